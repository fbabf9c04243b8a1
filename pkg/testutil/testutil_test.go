package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wpg/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTestEnvironment(t *testing.T) {
	env := NewTestEnvironment(t)

	assert.Equal(t, filepath.Join(env.Root, "app"), env.Paths.AppDir())
	assert.True(t, DirExists(t, env.Paths.TemplatesDir()))
	assert.True(t, DirExists(t, env.Paths.WallpapersDir()))
	assert.True(t, DirExists(t, env.Paths.SamplesDir()))
	assert.True(t, DirExists(t, env.HomeDir))

	assert.Equal(t, "wal", types.Backend(env.Settings))
	assert.True(t, env.Settings.Bool(types.SettingLightTheme, false))
}

func TestWithSettings(t *testing.T) {
	env := NewTestEnvironment(t).WithSettings(map[string]interface{}{
		types.SettingBackend: "colorz",
	})

	assert.Equal(t, "colorz", types.Backend(env.Settings))
}

func TestFileHelpers(t *testing.T) {
	env := NewTestEnvironment(t)

	wall := env.AddWallpaper("sunset.jpg", "img")
	assert.True(t, FileExists(t, wall))
	assert.Equal(t, "img", ReadFile(t, wall))

	link := filepath.Join(env.Root, "links", "current")
	CreateSymlink(t, wall, link)
	require.True(t, SymlinkExists(t, link))
	assert.Equal(t, wall, ReadSymlink(t, link))
	assert.False(t, SymlinkExists(t, wall))

	cfg := env.AddHomeFile(".config/kitty/kitty.conf", "font_size 12")
	assert.Equal(t, filepath.Join(env.HomeDir, ".config", "kitty", "kitty.conf"), cfg)
}
