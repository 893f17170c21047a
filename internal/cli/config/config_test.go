package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 7380, cfg.Server.Port)
	assert.False(t, cfg.Output.NoColor)
	assert.Equal(t, "localhost:7380", cfg.Server.Addr())
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("server:\n  host: 0.0.0.0\n  port: 9000\noutput:\n  no_color: true\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "annodex.yml"), content, 0o644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.True(t, cfg.Output.NoColor)
}

func TestLoad_InvalidPort(t *testing.T) {
	dir := t.TempDir()
	content := []byte("server:\n  port: 70000\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "annodex.yml"), content, 0o644))
	chdir(t, dir)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid server port")
}
