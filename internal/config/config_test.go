package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load([]string{"--source", "S1", "--target", "S21"})
	require.NoError(t, err)

	assert.Equal(t, "S1", cfg.Source)
	assert.Equal(t, "S21", cfg.Target)
	assert.Equal(t, "heap", cfg.Strategy)
	assert.Empty(t, cfg.Network)
	assert.Empty(t, cfg.DOT)
	assert.False(t, cfg.AllPairs)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_Positional(t *testing.T) {
	cfg, err := Load([]string{"-t", "S9", "S1", "S21"})
	require.NoError(t, err)
	assert.Equal(t, "S1", cfg.Source)
	assert.Equal(t, "S9", cfg.Target, "explicit flag wins over positional")

	_, err = Load([]string{"S1"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("METRO_STRATEGY", "linear")
	t.Setenv("METRO_LOG_LEVEL", "DEBUG")
	t.Setenv("METRO_ALL_PAIRS", "true")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "linear", cfg.Strategy)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.AllPairs)

	cfg, err = Load([]string{"--strategy", "heap", "--all-pairs=false", "A", "B"})
	require.NoError(t, err)
	assert.Equal(t, "heap", cfg.Strategy, "flag wins over env")
	assert.False(t, cfg.AllPairs)
}

func TestLoad_EnvFile(t *testing.T) {
	t.Cleanup(func() {
		os.Unsetenv("METRO_SOURCE")
		os.Unsetenv("METRO_TARGET")
	})
	path := writeFile(t, ".env", "METRO_SOURCE=S3\nMETRO_TARGET=S4\n")

	cfg, err := Load([]string{"--env-file", path})
	require.NoError(t, err)
	assert.Equal(t, "S3", cfg.Source)
	assert.Equal(t, "S4", cfg.Target)

	_, err = Load([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeFile(t, "metro.yaml", `
source: S1
target: S21
strategy: linear
network: lines.yaml
log:
  level: info
  format: json
  timestamp: true
`)

	cfg, err := Load([]string{"--config", path, "--target", "S5"})
	require.NoError(t, err)
	assert.Equal(t, "S1", cfg.Source)
	assert.Equal(t, "S5", cfg.Target)
	assert.Equal(t, "linear", cfg.Strategy)
	assert.Equal(t, "lines.yaml", cfg.Network)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Log.Timestamp)

	_, err = Load([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing target", []string{"--source", "S1"}},
		{"missing both", nil},
		{"bad strategy", []string{"--strategy", "bfs", "S1", "S2"}},
		{"bad log level", []string{"--log-level", "loud", "S1", "S2"}},
		{"bad log format", []string{"--log-format", "xml", "S1", "S2"}},
		{"unknown flag", []string{"--speed", "S1", "S2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_AllPairsNeedsNoStations(t *testing.T) {
	cfg, err := Load([]string{"--all-pairs"})
	require.NoError(t, err)
	assert.True(t, cfg.AllPairs)
}

func TestLoad_Help(t *testing.T) {
	var buf bytes.Buffer
	_, err := Load([]string{"--help"}, WithOutput(&buf))

	assert.True(t, errors.Is(err, pflag.ErrHelp))
	assert.Contains(t, buf.String(), "--strategy")
}
