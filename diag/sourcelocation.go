package diag

import (
	"fmt"
	"runtime"
)

// SourceLocation identifies a call site: file, line, and enclosing
// function.
type SourceLocation struct {
	File string
	Line int
	Function string
}

// String renders "function (file:line)".
func (l SourceLocation) String() string {
	if l.Function == "" {
		return fmt.Sprintf("%s:%d", l.File, l.Line)
	}
	return fmt.Sprintf("%s (%s:%d)", l.Function, l.File, l.Line)
}

// CaptureSourceLocation captures the caller's location skip frames above
// itself; skip 0 means "whoever called CaptureSourceLocation".
func CaptureSourceLocation(skip int) SourceLocation {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return SourceLocation{}
	}
	fn := runtime.FuncForPC(pc)
	name := ""
	if fn != nil {
		name = fn.Name()
	}
	return SourceLocation{File: file, Line: line, Function: name}
}

// CaptureStackTrace renders the current goroutine's stack as a plain
// string. Depth bounds how many bytes of stack text are captured; 0
// means a reasonable default.
func CaptureStackTrace(depth int) string {
	if depth <= 0 {
		depth = 1 << 16
	}
	buf := make([]byte, depth)
	n := runtime.Stack(buf, false)
	return string(buf[:n])
}
