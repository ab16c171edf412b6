package logger

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/Noxagonal/Bitcrafte-Engine-sub002/diag"
	"github.com/Noxagonal/Bitcrafte-Engine-sub002/memalloc"
)

// Entry is a single recorded log line: a severity and a message.
type Entry struct {
	Severity Severity
	Message *diag.PrintRecord
	At time.Time
}

// LoggerCreateInfo configures a Logger's construction parameters.
type LoggerCreateInfo struct {
	LogHistorySize int
	MinimumReportSeverity Severity
	MinimumDisplaySeverity Severity
	Disabled bool
	PrintToSystemConsole bool

	// Console, when PrintToSystemConsole is set, receives every entry at
	// or above MinimumDisplaySeverity. Left nil, a default stdout sink is
	// constructed lazily.
	Console *diag.ConsoleSink

	// FloodWindow/FloodLimit bound how many times the same severity may
	// be forwarded to the console within FloodWindow; zero disables the
	// guard, ported from catrate's sliding-window rate limiter.
	FloodWindow time.Duration
	FloodLimit int
}

// Logger is the engine's structured logger: bounded history plus
// severity-gated console forwarding.
type Logger struct {
	mu sync.Mutex
	info LoggerCreateInfo
	history *historyRing
	flood map[Severity]*floodGuard
}

// New constructs a Logger from info.
func New(info LoggerCreateInfo) *Logger {
	if info.LogHistorySize <= 0 {
		info.LogHistorySize = 1024
	}
	l := &Logger{
		info: info,
		history: newHistoryRing(info.LogHistorySize),
	}
	if info.FloodWindow > 0 && info.FloodLimit > 0 {
		l.flood = make(map[Severity]*floodGuard)
	}
	return l
}

// Log records message at severity: acquires the logger mutex, checks
// Disabled, drops entries below MinimumReportSeverity (CRITICAL_ERROR
// always records), appends to the bounded history, then forwards to the
// console when enabled and at or above MinimumDisplaySeverity.
func (l *Logger) Log(severity Severity, message *diag.PrintRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.info.Disabled {
		return
	}
	if severity == Debug && !memalloc.DevelopmentBuild {
		// shipping guard: debug entries never even reach history in a
		// release build.
		return
	}
	if severity < l.info.MinimumReportSeverity && severity != CriticalError {
		return
	}

	l.history.Push(Entry{Severity: severity, Message: message, At: time.Time{}})

	if !l.info.PrintToSystemConsole || severity < l.info.MinimumDisplaySeverity {
		return
	}
	if l.suppressedByFlood(severity) {
		return
	}

	header := diag.MakePrintRecord(fmt.Sprintf("\n\n%s\n", severity.String()), severity.Theme())
	body := message
	body = (&diag.PrintRecord{}).Append(body)
	body.AddIndent(1)
	header.Append(body)
	l.writeConsole(header)
}

// LogText is a convenience wrapper building a plain-text PrintRecord.
func (l *Logger) LogText(severity Severity, text string) {
	l.Log(severity, diag.MakePrintRecord(text, severity.Theme()))
}

// LogException walks e's chain, emitting for each link a block titled
// "Exception <n>" followed by the exception's indented message.
// CRITICAL_ERROR bypasses MinimumReportSeverity but still respects
// Disabled.
func (l *Logger) LogException(severity Severity, e *diag.Exception) {
	if e == nil || e.IsEmpty() {
		return
	}

	combined := &diag.PrintRecord{}
	n := 0
	for link := e; link != nil; link = link.Next() {
		title := diag.MakePrintRecord(fmt.Sprintf("Exception %d\n", n), severity.Theme())
		body := link.Message()
		if body == nil {
			body = &diag.PrintRecord{}
		}
		indented := (&diag.PrintRecord{}).Append(body)
		indented.AddIndent(1)
		title.Append(indented)
		if n > 0 {
			combined.AppendSection("\n", severity.Theme())
		}
		combined.Append(title)
		n++
	}

	l.Log(severity, combined)
}

func (l *Logger) writeConsole(r *diag.PrintRecord) {
	if l.info.Console == nil {
		l.info.Console = diag.NewConsoleSink(os.Stdout, 0)
	}
	_ = l.info.Console.Write(r)
}

// GetLogHistory returns a snapshot of recorded entries oldest-first. It is
// a defensive copy rather than a borrowed view (see historyRing.Snapshot),
// so the caller may hold it past the logger's own lifetime.
func (l *Logger) GetLogHistory() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.history.Snapshot()
}

// TotalRecorded returns the monotonic total-recorded counter.
func (l *Logger) TotalRecorded() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.history.Total()
}
