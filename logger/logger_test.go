package logger

import (
	"testing"
	"time"

	"github.com/Noxagonal/Bitcrafte-Engine-sub002/diag"
	"github.com/stretchr/testify/assert"
)

func TestLogger_HistoryEvictsOldest(t *testing.T) {
	t.Parallel()

	l := New(LoggerCreateInfo{LogHistorySize: 2, MinimumReportSeverity: Verbose})
	l.LogText(Info, "one")
	l.LogText(Info, "two")
	l.LogText(Info, "three")

	hist := l.GetLogHistory()
	assert.Len(t, hist, 2)
	assert.Equal(t, "two", hist[0].Message.PlainText())
	assert.Equal(t, "three", hist[1].Message.PlainText())
	assert.EqualValues(t, 3, l.TotalRecorded())
}

func TestLogger_DropsBelowReportSeverity(t *testing.T) {
	t.Parallel()

	l := New(LoggerCreateInfo{LogHistorySize: 8, MinimumReportSeverity: Warning})
	l.LogText(Info, "ignored")
	l.LogText(Warning, "kept")

	hist := l.GetLogHistory()
	assert.Len(t, hist, 1)
	assert.Equal(t, Warning, hist[0].Severity)
}

func TestLogger_CriticalErrorAlwaysRecords(t *testing.T) {
	t.Parallel()

	l := New(LoggerCreateInfo{LogHistorySize: 8, MinimumReportSeverity: CriticalError})
	l.LogText(Error, "ignored")
	l.LogText(CriticalError, "kept")

	hist := l.GetLogHistory()
	assert.Len(t, hist, 1)
	assert.Equal(t, CriticalError, hist[0].Severity)
}

func TestLogger_DisabledDropsEverything(t *testing.T) {
	t.Parallel()

	l := New(LoggerCreateInfo{LogHistorySize: 8, Disabled: true, MinimumReportSeverity: Verbose})
	l.LogText(CriticalError, "ignored")

	assert.Empty(t, l.GetLogHistory())
}

func TestLogger_ExceptionOverloadWalksChain(t *testing.T) {
	t.Parallel()

	l := New(LoggerCreateInfo{LogHistorySize: 8, MinimumReportSeverity: Verbose})
	root := diag.NewExceptionText("disk full")
	wrapped := diag.NewExceptionText("write failed")
	wrapped.Chain(root)

	l.LogException(Error, wrapped)

	hist := l.GetLogHistory()
	assert.Len(t, hist, 1)
	text := hist[0].Message.PlainText()
	assert.Contains(t, text, "Exception 0")
	assert.Contains(t, text, "Exception 1")
	assert.Contains(t, text, "write failed")
	assert.Contains(t, text, "disk full")
}

func TestFloodGuard_SuppressesWithinWindow(t *testing.T) {
	t.Parallel()

	g := newFloodGuard(time.Minute, 2)
	now := time.Now()

	assert.True(t, g.Allow(now))
	assert.True(t, g.Allow(now))
	assert.False(t, g.Allow(now))
	assert.True(t, g.Allow(now.Add(2*time.Minute)))
}
