package diag

import (
	"io"
	"os"
	"sync"

	colorable "github.com/mattn/go-colorable"
	isatty "github.com/mattn/go-isatty"
)

// ConsoleSink serializes PrintRecord output to a terminal, wrapping each
// section in its theme's ANSI colour sequence when the target is a real
// TTY. Writes from multiple worker-pool threads are serialized by mu,
// since the underlying stream is not safe for concurrent writes.
type ConsoleSink struct {
	mu sync.Mutex
	out io.Writer
	color bool
	indentSpaces int
}

// NewConsoleSink wraps f (typically os.Stdout) in a colorable writer for
// Windows ANSI translation and auto-detects colour support via go-isatty.
func NewConsoleSink(f *os.File, indentSpaces int) *ConsoleSink {
	if indentSpaces <= 0 {
		indentSpaces = 4
	}
	fd := f.Fd()
	return &ConsoleSink{
		out: colorable.NewColorable(f),
		color: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		indentSpaces: indentSpaces,
	}
}

// Write finalizes r's indentation and writes every section to the
// console, wrapping coloured sections in their theme's ANSI sequence
// when colour support was detected.
func (c *ConsoleSink) Write(r *PrintRecord) error {
	final := r.GetFinalized(c.indentSpaces)

	c.mu.Lock()
	defer c.mu.Unlock()

	for _, s := range final.sectionsView() {
		if !c.color {
			if _, err := io.WriteString(c.out, s.text); err != nil {
				return err
			}
			continue
		}
		if _, err := io.WriteString(c.out, ansiSequence(s.theme)); err != nil {
			return err
		}
		if _, err := io.WriteString(c.out, s.text); err != nil {
			return err
		}
		if _, err := io.WriteString(c.out, ansiReset); err != nil {
			return err
		}
	}
	return nil
}
