package diag

import (
	"fmt"
	"os"

	"github.com/Noxagonal/Bitcrafte-Engine-sub002/memalloc"
)

// Exception is the engine's structured error type: a PrintRecord message,
// a captured source location and stack trace, and an optional chained
// cause.
type Exception struct {
	message *PrintRecord
	location SourceLocation
	stack string
	next *Exception
}

// NewException builds an Exception at the caller's source location.
func NewException(message *PrintRecord) *Exception {
	return &Exception{
		message: message,
		location: CaptureSourceLocation(1),
		stack: CaptureStackTrace(0),
	}
}

// NewExceptionText builds an Exception from a plain string message.
func NewExceptionText(message string) *Exception {
	e := NewException(MakePrintRecord(message, ThemeError))
	e.location = CaptureSourceLocation(1)
	return e
}

// IsEmpty reports whether e carries no message and no cause: the
// zero-value Exception, meaning no error occurred.
func (e *Exception) IsEmpty() bool {
	return e == nil || (e.message == nil || e.message.IsEmpty()) && e.next == nil
}

// Message returns the exception's print record.
func (e *Exception) Message() *PrintRecord { return e.message }

// Location returns the exception's captured source location.
func (e *Exception) Location() SourceLocation { return e.location }

// StackTrace returns the exception's captured stack trace text.
func (e *Exception) StackTrace() string { return e.stack }

// Next returns the chained cause, or nil.
func (e *Exception) Next() *Exception { return e.next }

// Chain sets cause as e's next link and returns e. Chaining an exception
// to itself, or introducing a cycle through the existing chain, is a
// no-op: an unbounded cycle would make every chain walk loop forever.
func (e *Exception) Chain(cause *Exception) *Exception {
	if cause == nil || cause == e {
		return e
	}
	for n := cause; n != nil; n = n.next {
		if n == e {
			return e
		}
	}
	e.next = cause
	return e
}

// Error implements the error interface by rendering the full chain's
// plain text, outermost first.
func (e *Exception) Error() string {
	if e == nil {
		return ""
	}
	s := ""
	if e.message != nil {
		s = e.message.PlainText()
	}
	if e.next != nil {
		s += ": " + e.next.Error()
	}
	return s
}

// Throw reports the exception through the development/release split:
// development builds panic so a debugger or test harness sees the
// failure immediately, release builds print the full chain to stderr and
// terminate the process, since there is no caller left upstream able to
// recover from a thrown engine exception.
func (e *Exception) Throw() {
	if e == nil {
		return
	}
	if memalloc.DevelopmentBuild {
		panic(e)
	}
	fmt.Fprintln(os.Stderr, e.Error())
	os.Exit(1)
}
