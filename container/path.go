package container

import (
	"strings"
)

// Path is a parsed, canonicalized filesystem path: segments separated by
// `/` internally (`\` accepted on parse), with `.`/`..` resolved where a
// concrete parent exists.
type Path struct {
	segments []string
	absolute bool
	// driveLetter is set (e.g. "C:") when the path is Windows-absolute;
	// absolute && driveLetter == "" means POSIX-absolute (leading empty
	// segment).
	driveLetter string
}

// ParsePath parses raw into a canonical Path: repeated/trailing
// separators collapse, `..` resolves against a concrete parent when one
// exists, and a leading empty segment (POSIX) or a drive-letter segment
// (Windows) marks the path absolute.
func ParsePath(raw string) *Path {
	normalized := strings.ReplaceAll(raw, `\`, `/`)

	p := &Path{}
	if drive, rest, ok := splitDriveLetter(normalized); ok {
		p.absolute = true
		p.driveLetter = drive
		normalized = rest
	} else if strings.HasPrefix(normalized, "/") {
		p.absolute = true
	}

	for _, part := range strings.Split(normalized, "/") {
		if part == "" || part == "." {
			continue
		}
		if part == ".." {
			if n := len(p.segments); n > 0 && p.segments[n-1] != ".." {
				p.segments = p.segments[:n-1]
				continue
			}
			if p.absolute {
				// ".." above an absolute root is discarded: there is no
				// concrete parent to resolve against.
				continue
			}
			p.segments = append(p.segments, "..")
			continue
		}
		p.segments = append(p.segments, part)
	}

	return p
}

func splitDriveLetter(s string) (drive, rest string, ok bool) {
	if len(s) >= 2 && isASCIILetter(s[0]) && s[1] == ':' {
		return s[:2], s[2:], true
	}
	return "", s, false
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// Segments returns the canonical segment list. For example,
// ParsePath("t1/t2/t3/../../../..") canonicalizes to a single ".."
// segment.
func (p *Path) Segments() []string { return p.segments }

// IsAbsolute reports whether the path is rooted.
func (p *Path) IsAbsolute() bool { return p.absolute }

// String renders the canonical form: double separators collapsed and
// any trailing slash stripped.
func (p *Path) String() string {
	var b strings.Builder
	if p.driveLetter != "" {
		b.WriteString(p.driveLetter)
		b.WriteByte('/')
	} else if p.absolute {
		b.WriteByte('/')
	}
	for i, seg := range p.segments {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(seg)
	}
	return b.String()
}

// GetStem returns the final segment without its extension.
func (p *Path) GetStem() string {
	if len(p.segments) == 0 {
		return ""
	}
	last := p.segments[len(p.segments)-1]
	if idx := strings.LastIndexByte(last, '.'); idx > 0 {
		return last[:idx]
	}
	return last
}

// GetExtension returns the final segment's extension, including the
// leading dot, or "" if there is none.
func (p *Path) GetExtension() string {
	if len(p.segments) == 0 {
		return ""
	}
	last := p.segments[len(p.segments)-1]
	if idx := strings.LastIndexByte(last, '.'); idx > 0 {
		return last[idx:]
	}
	return ""
}

// GetCommonParent returns the deepest Path that is a prefix of both p and
// other.
func (p *Path) GetCommonParent(other *Path) *Path {
	n := len(p.segments)
	if len(other.segments) < n {
		n = len(other.segments)
	}
	common := 0
	for common < n && p.segments[common] == other.segments[common] {
		common++
	}
	return &Path{
		segments: append([]string(nil), p.segments[:common]...),
		absolute: p.absolute,
		driveLetter: p.driveLetter,
	}
}

// GetRelativePath returns the path to reach other from p, using ".."
// segments to climb out of any non-shared prefix of p.
func (p *Path) GetRelativePath(other *Path) *Path {
	common := p.GetCommonParent(other)
	climbs := len(p.segments) - len(common.segments)

	rel := &Path{}
	for i := 0; i < climbs; i++ {
		rel.segments = append(rel.segments, "..")
	}
	rel.segments = append(rel.segments, other.segments[len(common.segments):]...)
	return rel
}
