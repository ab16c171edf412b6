// Package logger implements the engine's bounded-history, severity-gated
// logger with console forwarding.
package logger

import "github.com/Noxagonal/Bitcrafte-Engine-sub002/diag"

// Severity is one of the fixed ordered log levels:
// VERBOSE < DEBUG < INFO < PERFORMANCE_WARNING < WARNING < ERROR <
// CRITICAL_ERROR.
type Severity int

const (
	Verbose Severity = iota
	Debug
	Info
	PerformanceWarning
	Warning
	Error
	CriticalError
)

var severityNames = map[Severity]string{
	Verbose: "VERBOSE",
	Debug: "DEBUG",
	Info: "INFO",
	PerformanceWarning: "PERFORMANCE_WARNING",
	Warning: "WARNING",
	Error: "ERROR",
	CriticalError: "CRITICAL_ERROR",
}

// String returns the severity's canonical name.
func (s Severity) String() string {
	if n, ok := severityNames[s]; ok {
		return n
	}
	return "UNKNOWN"
}

var severityTheme = map[Severity]diag.Theme{
	Verbose: diag.ThemeVerbose,
	Debug: diag.ThemeDebug,
	Info: diag.ThemeInfo,
	PerformanceWarning: diag.ThemePerformanceWarning,
	Warning: diag.ThemeWarning,
	Error: diag.ThemeError,
	CriticalError: diag.ThemeCriticalError,
}

// Theme returns the diag.Theme a severity is rendered in.
func (s Severity) Theme() diag.Theme { return severityTheme[s] }
