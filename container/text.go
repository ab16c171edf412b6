package container

import "strings"

// Text is the engine's UTF-8 text container, covering the same ground as
// a `Text`/`Text8` family in a C++ engine: Go's native string/rune
// handling absorbs the Text16/Text32 code-unit distinctions that a C++
// container needs a dedicated type per width for, so a single
// UTF-8-backed Text suffices here.
type Text struct {
	buf List[byte]
}

// NewText constructs a Text from a Go string.
func NewText(s string) *Text {
	t := &Text{}
	t.buf.Append([]byte(s))
	return t
}

// String returns the text's contents as a Go string.
func (t *Text) String() string { return string(t.buf.Slice()) }

// Len returns the number of bytes in the text.
func (t *Text) Len() int { return t.buf.Len() }

// Append appends s to the text.
func (t *Text) Append(s string) { t.buf.Append([]byte(s)) }

// AppendText appends another Text's contents, snapshotting it first so
// self-append behaves like List.Append's documented self-append support.
func (t *Text) AppendText(other *Text) { t.buf.Append(append([]byte(nil), other.buf.Slice()...)) }

// Free releases the backing allocation.
func (t *Text) Free() { t.buf.Free() }

// ConversionOutcome models the result of a UTF conversion: one of
// {SUCCESS, INCOMPLETE, ERROR, UNDETERMINED}.
type ConversionOutcome int

const (
	ConversionSuccess ConversionOutcome = iota
	ConversionIncomplete
	ConversionError
	ConversionUndetermined
)

// ConversionResult reports how many runes/code-units were produced and
// the outcome.
type ConversionResult struct {
	Outcome ConversionOutcome
	Count int
}

// ToUTF32 decodes s's UTF-8 bytes into code points, validating along the
// way. Invalid sequences produce ConversionError with the count of code
// points successfully decoded before the failure.
func ToUTF32(s string) ([]rune, ConversionResult) {
	out := make([]rune, 0, len(s))
	for i, r := range s {
		if r == '�' && !isValidReplacementAt(s, i) {
			return out, ConversionResult{Outcome: ConversionError, Count: len(out)}
		}
		out = append(out, r)
	}
	return out, ConversionResult{Outcome: ConversionSuccess, Count: len(out)}
}

func isValidReplacementAt(s string, byteIdx int) bool {
	// A genuine U+FFFD in well-formed input is one valid UTF-8 byte
	// sequence wide; a strings.HasPrefix check against the raw bytes at
	// that offset disambiguates "rune decode failed" from "author really
	// wrote U+FFFD".
	return strings.HasPrefix(s[byteIdx:], "�")
}

// FromUTF32 encodes code points back to a UTF-8 string, the inverse of
// ToUTF32: round-tripping through both preserves well-formed bytes.
func FromUTF32(runes []rune) (string, ConversionResult) {
	return string(runes), ConversionResult{Outcome: ConversionSuccess, Count: len(runes)}
}
