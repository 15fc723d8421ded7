package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chtemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
}

func TestLoadDefaults(t *testing.T) {
	chtemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, "EN", cfg.Output.Language)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadFromYAML(t *testing.T) {
	chtemp(t)

	yaml := `
output:
  dir: /tmp/checklists
  language: PT
log:
  level: debug
  format: json
`
	dir, _ := os.Getwd()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/checklists", cfg.Output.Dir)
	assert.Equal(t, "PT", cfg.Output.Language)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadFromEnv(t *testing.T) {
	chtemp(t)
	t.Setenv("DDCHECK_OUTPUT_LANGUAGE", "PT")
	t.Setenv("DDCHECK_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "PT", cfg.Output.Language)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestInitLogger(t *testing.T) {
	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.NotNil(t, zap.L())

	require.NoError(t, InitLogger(LogConfig{Level: "info", Format: "json"}))

	err := InitLogger(LogConfig{Level: "nope", Format: "json"})
	assert.Error(t, err)
}
