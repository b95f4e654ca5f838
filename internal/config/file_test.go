package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	t.Run("parses every section", func(t *testing.T) {
		tmpDir := t.TempDir()
		tomlContent := `plain = true

[git]
default_remote = "upstream"
color = false

[branch]
protected = ["main", "release"]

[switch]
wip_marker = "WIP: parked"
`
		path := filepath.Join(tmpDir, FileName)
		require.NoError(t, os.WriteFile(path, []byte(tomlContent), 0o644)) //nolint:gosec

		cfg, err := LoadFromFile(path)
		require.NoError(t, err)

		assert.Equal(t, "upstream", cfg.Git.DefaultRemote)
		require.NotNil(t, cfg.Git.Color)
		assert.False(t, *cfg.Git.Color)
		assert.Equal(t, []string{"main", "release"}, cfg.Branch.Protected)
		assert.Equal(t, "WIP: parked", cfg.Switch.WipMarker)
		require.NotNil(t, cfg.Plain)
		assert.True(t, *cfg.Plain)
		assert.Nil(t, cfg.Debug)
	})

	t.Run("missing file yields empty config", func(t *testing.T) {
		cfg, err := LoadFromFile(filepath.Join(t.TempDir(), FileName))
		require.NoError(t, err)
		assert.Empty(t, cfg.Settings())
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		require.NoError(t, os.WriteFile(path, []byte("[git]\nremote = \"x\"\n"), 0o644)) //nolint:gosec

		_, err := LoadFromFile(path)
		assert.Error(t, err)
	})

	t.Run("malformed TOML is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		require.NoError(t, os.WriteFile(path, []byte("[git\n"), 0o644)) //nolint:gosec

		_, err := LoadFromFile(path)
		assert.Error(t, err)
	})
}

func TestSettings(t *testing.T) {
	var cfg FileConfig
	cfg.Git.DefaultRemote = "upstream"
	debug := true
	cfg.Debug = &debug

	settings := cfg.Settings()

	assert.Equal(t, map[string]any{
		"git.default_remote": "upstream",
		"debug":              true,
	}, settings)
}

func TestWriteTemplateToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "gitfu", UserFileName)

	require.NoError(t, WriteTemplateToPath(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[switch]")

	cfg, err := LoadFromFile(path)
	require.NoError(t, err, "template must parse")
	assert.Empty(t, cfg.Settings(), "template only contains comments")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file should be renamed away")
}
