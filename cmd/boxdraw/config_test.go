package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "boxdraw.toml")
	require.NoError(t, os.WriteFile(path, []byte("text_width = 10.0\ntext_height = 20.0\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 10.0, cfg.TextWidth)
	assert.Equal(t, 20.0, cfg.TextHeight)
}

func TestLoadConfigMissingExplicitPathErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.Error(t, err)
}

func TestLoadConfigNoDefaultFileIsNotAnError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Zero(t, cfg.TextWidth)
}
