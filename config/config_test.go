package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_HasDocumentedValues(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, 1024, cfg.Logger.HistorySize)
	assert.Equal(t, "INFO", cfg.Logger.MinimumReportSeverity)
	assert.Equal(t, "WARNING", cfg.Logger.MinimumDisplaySeverity)
}

func TestLoad_OverridesOnlySpecifiedFields(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[logger]
history_size = 64
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 64, cfg.Logger.HistorySize)
	assert.Equal(t, "INFO", cfg.Logger.MinimumReportSeverity, "unset fields keep their default")
}
