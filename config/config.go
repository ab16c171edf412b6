// Package config loads the engine's TOML-backed runtime configuration:
// logger severities and history size, worker pool sizing, and console
// options, grounded on microbatch.BatcherConfig's "struct of documented
// defaults" idiom.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// LoggerConfig configures the engine's Logger. Zero values take the
// defaults documented on each field.
type LoggerConfig struct {
	// HistorySize bounds the logger's ring buffer. Defaults to 1024 if 0.
	HistorySize int `toml:"history_size"`

	// MinimumReportSeverity is the lowest severity recorded into history,
	// by name (VERBOSE, DEBUG, INFO, PERFORMANCE_WARNING, WARNING, ERROR,
	// CRITICAL_ERROR). Defaults to "INFO" if empty.
	MinimumReportSeverity string `toml:"minimum_report_severity"`

	// MinimumDisplaySeverity is the lowest severity forwarded to the
	// console, by name. Defaults to "WARNING" if empty.
	MinimumDisplaySeverity string `toml:"minimum_display_severity"`

	Disabled bool `toml:"disabled"`
	PrintToSystemConsole bool `toml:"print_to_system_console"`
}

// ThreadPoolConfig configures the engine's worker pool.
type ThreadPoolConfig struct {
	// WorkerCount is the number of worker threads to start. Defaults to
	// runtime.GOMAXPROCS(0) if 0 (see cmd/enginectl, which also wires
	// automaxprocs before reading this field).
	WorkerCount int `toml:"worker_count"`
}

// EngineConfig is the engine's top-level TOML configuration document.
type EngineConfig struct {
	Logger LoggerConfig `toml:"logger"`
	ThreadPool ThreadPoolConfig `toml:"thread_pool"`
}

// Default returns an EngineConfig with every field at its documented
// default.
func Default() EngineConfig {
	return EngineConfig{
		Logger: LoggerConfig{
			HistorySize: 1024,
			MinimumReportSeverity: "INFO",
			MinimumDisplaySeverity: "WARNING",
			PrintToSystemConsole: true,
		},
	}
}

// Load reads and decodes an EngineConfig from path, starting from
// Default() so any field the file omits keeps its default value.
func Load(path string) (EngineConfig, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
