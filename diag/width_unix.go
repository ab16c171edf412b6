//go:build !windows

package diag

import (
	"os"

	"golang.org/x/sys/unix"
)

// TerminalWidth returns f's terminal width in columns via the TIOCGWINSZ
// ioctl, a direct syscall instead of shelling out to `stty size`/`stty
// cols`. ok is false when f is not a terminal.
func TerminalWidth(f *os.File) (width int, ok bool) {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return 0, false
	}
	return int(ws.Col), true
}
