//go:build windows

package diag

import "os"

// TerminalWidth is unimplemented on Windows: it always reports ok ==
// false rather than shelling out to a console-mode API.
func TerminalWidth(f *os.File) (width int, ok bool) {
	return 0, false
}
