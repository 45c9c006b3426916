package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "does-not-exist.yml"))

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultSheet, c.Input.Sheet)
	assert.Equal(t, DefaultAddr, c.Web.Addr)
	assert.Equal(t, DefaultDir, c.Export.Dir)
	assert.Empty(t, c.Input.WinToken)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	body := `
input:
  sheet: Records
  win_token: Gagné
web:
  addr: ":9090"
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("CONFIG_PATH", path)

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Records", c.Input.Sheet)
	assert.Equal(t, "Gagné", c.Input.WinToken)
	assert.Equal(t, ":9090", c.Web.Addr)
	// Unset fields still fall back.
	assert.Equal(t, DefaultDir, c.Export.Dir)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("input: ["), 0o644))
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	assert.Error(t, err)
}
