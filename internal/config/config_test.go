package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MEASUREDESK_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("data", "icon.png"), c.UI.IconPath)
	require.Equal(t, 960, c.UI.Width)
	require.Equal(t, ThemeAuto, c.UI.Theme)
	require.Equal(t, 20, c.UI.CornerDiameter)
	require.False(t, c.Prefs.StrictBounds)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := []byte(`
[ui]
title = "Lab bench"
theme = "light"
corner_diameter = 12

[prefs]
strict_bounds = true
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	t.Setenv("MEASUREDESK_UI_WIDTH", "1280")

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Lab bench", c.UI.Title)
	require.Equal(t, ThemeLight, c.UI.Theme)
	require.Equal(t, 12, c.UI.CornerDiameter)
	require.True(t, c.Prefs.StrictBounds)
	require.Equal(t, 1280, c.UI.Width)
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntheme = \"purple\"\n"), 0o644))

	_, err := Load(path)
	require.ErrorContains(t, err, "purple")

	_, err = Load(filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
}
