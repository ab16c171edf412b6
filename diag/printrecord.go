package diag

import "strings"

// printRecordSection is a themed, indented chunk of text.
type printRecordSection struct {
	theme Theme
	indent int
	text string
}

// PrintRecord is an ordered list of sections.
// The zero value is an empty record and is directly usable.
type PrintRecord struct {
	sections []printRecordSection
}

// MakePrintRecord builds a single-section record.
func MakePrintRecord(text string, theme Theme) *PrintRecord {
	return &PrintRecord{sections: []printRecordSection{{theme: theme, text: text}}}
}

// Append concatenates other's sections onto r and returns r.
func (r *PrintRecord) Append(other *PrintRecord) *PrintRecord {
	r.sections = append(r.sections, other.sections...)
	return r
}

// AppendSection appends a single new section and returns r.
func (r *PrintRecord) AppendSection(text string, theme Theme) *PrintRecord {
	r.sections = append(r.sections, printRecordSection{theme: theme, text: text})
	return r
}

// AddIndent increments every section's indent level by k and returns r.
func (r *PrintRecord) AddIndent(k int) *PrintRecord {
	for i := range r.sections {
		r.sections[i].indent += k
	}
	return r
}

// IsEmpty reports whether the record has zero sections. The original
// engine's PrintRecord::IsEmpty returns section_count (truthy whenever
// non-empty) rather than section_count == 0 — an apparent bug there; this
// implementation uses the corrected "empty means zero sections" semantics.
func (r *PrintRecord) IsEmpty() bool { return len(r.sections) == 0 }

// LineCount sums per-section newline counts plus one.
func (r *PrintRecord) LineCount() int {
	total := 0
	for _, s := range r.sections {
		total += strings.Count(s.text, "\n")
	}
	return total + 1
}

// GetFinalized expands accumulated indent levels into literal leading
// spaces and returns a new record; r is left unmodified (finalisation is
// pure). indentSpaces is the number of spaces per indent level.
//
// Expansion happens at (a) the first character of the record, and (b)
// immediately after every '\n' that is not the last character of its
// section; a trailing newline defers indent insertion to the first
// character of the next section.
func (r *PrintRecord) GetFinalized(indentSpaces int) *PrintRecord {
	out := &PrintRecord{sections: make([]printRecordSection, 0, len(r.sections))}

	pending := true
	for _, s := range r.sections {
		var b strings.Builder
		pad := strings.Repeat(" ", s.indent*indentSpaces)

		if pending && s.text != "" {
			b.WriteString(pad)
		}
		for i := 0; i < len(s.text); i++ {
			c := s.text[i]
			b.WriteByte(c)
			if c == '\n' && i != len(s.text)-1 {
				b.WriteString(pad)
			}
		}
		if s.text != "" {
			pending = strings.HasSuffix(s.text, "\n")
		}

		out.sections = append(out.sections, printRecordSection{theme: s.theme, indent: 0, text: b.String()})
	}

	return out
}

// PlainText concatenates every section's text, ignoring theme/indent — a
// convenience for logging backends and tests that don't care about colour.
func (r *PrintRecord) PlainText() string {
	var b strings.Builder
	for _, s := range r.sections {
		b.WriteString(s.text)
	}
	return b.String()
}

// sectionsView exposes the section list for the console sink.
func (r *PrintRecord) sectionsView() []printRecordSection { return r.sections }
