package wpg

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/wpg/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	rootCmd := NewRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestNoCommand(t *testing.T) {
	testutil.NewTestEnvironment(t)

	_, err := run(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), MsgErrNoCommand)
}

func TestTemplateCommands(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	cfg := env.AddHomeFile(".config/kitty/kitty.conf", "font_size 12")

	out, err := run(t, "template", "add", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "config_kitty_kitty.conf.base")
	assert.True(t, testutil.FileExists(t, cfg+".bak"))

	out, err = run(t, "template", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "config_kitty_kitty.conf.base")
	assert.Contains(t, out, "-> "+cfg)

	out, err = run(t, "template", "rm", "config_kitty_kitty.conf.base")
	require.NoError(t, err)
	assert.Contains(t, out, "config_kitty_kitty.conf")

	out, err = run(t, "template", "list")
	require.NoError(t, err)
	assert.Contains(t, out, MsgNoTemplates)
}

func TestTemplateRm_MissingIsNotAnError(t *testing.T) {
	testutil.NewTestEnvironment(t)

	out, err := run(t, "template", "rm", "ghost.base")
	require.NoError(t, err)
	assert.Contains(t, out, "ghost.base")
}

func TestCurrentCommands(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	wall := env.AddWallpaper("sunset.jpg", "img")

	_, err := run(t, "current", "set", "sunset.jpg")
	require.NoError(t, err)
	assert.Equal(t, wall, testutil.ReadSymlink(t, env.Paths.CurrentPath()))

	out, err := run(t, "current", "show")
	require.NoError(t, err)
	assert.Equal(t, "sunset.jpg\n", out)
}

func TestCommandsCreateLayoutOnFreshInstall(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	fresh := filepath.Join(env.Root, "fresh")
	_, err := run(t, "--dir", fresh, "current", "set", "sunset.jpg")
	require.NoError(t, err)
	assert.True(t, testutil.SymlinkExists(t, filepath.Join(fresh, ".current")))

	other := filepath.Join(env.Root, "other")
	_, err = run(t, "--dir", other, "script", "sunset.jpg", "scheme1")
	require.NoError(t, err)
	assert.True(t, testutil.FileExists(t, filepath.Join(other, "wp_init.sh")))
}

func TestSchemeCommands(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	wall := env.AddWallpaper("sunset.jpg", "12345")

	out, err := run(t, "scheme", "sample", "sunset.jpg", "--backend", "colorz")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(env.Paths.SamplesDir(), "sunset.jpg_colorz_sample.png")+"\n", out)

	out, err = run(t, "scheme", "path", "sunset.jpg")
	require.NoError(t, err)
	name := strings.NewReplacer("/", "_", ".", "_").Replace(wall) + "_dark_wal__5_1.1.0.json"
	assert.Equal(t, filepath.Join(env.Paths.AppDir(), "schemes", name)+"\n", out)

	sample := testutil.CreateFile(t, env.Paths.SamplesDir(), "sunset.jpg_wal_sample.png", "png")
	out, err = run(t, "scheme", "clean", "sunset.jpg")
	require.NoError(t, err)
	assert.Contains(t, out, "removed 1 file(s)")
	assert.False(t, testutil.FileExists(t, sample))
}

func TestWallpapersCommand(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.AddWallpaper("b.png", "")
	env.AddWallpaper("a.jpg", "")

	out, err := run(t, "wallpapers")
	require.NoError(t, err)
	assert.Equal(t, "a.jpg\nb.png\n", out)

	out, err = run(t, "wallpapers", "--pattern", `.*\.png`)
	require.NoError(t, err)
	assert.Equal(t, "b.png\n", out)

	_, err = run(t, "wallpapers", "--pattern", "([")
	assert.Error(t, err)
}

func TestScriptCommand(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	_, err := run(t, "config", "set", "set_wallpaper", "false")
	require.NoError(t, err)

	_, err = run(t, "script", "sunset.jpg", "scheme1")
	require.NoError(t, err)

	content := testutil.ReadFile(t, env.Paths.InitScriptPath())
	assert.Contains(t, content, "wpg -Lnrs 'sunset.jpg' 'scheme1'")
}

func TestConfigCommands(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	out, err := run(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, env.Paths.ConfigFilePath())
	assert.True(t, testutil.FileExists(t, env.Paths.ConfigFilePath()))

	out, err = run(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")

	_, err = run(t, "config", "set", "backend", "colorz")
	require.NoError(t, err)

	out, err = run(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "backend = 'colorz'")

	_, err = run(t, "config", "set", "nope", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestBackendsCommand(t *testing.T) {
	testutil.NewTestEnvironment(t)

	out, err := run(t, "backends")
	require.NoError(t, err)
	for _, name := range []string{"colorthief", "colorz", "haishoku", "schemer2", "wal"} {
		assert.Contains(t, out, name)
	}
}

func TestVersionCommand(t *testing.T) {
	testutil.NewTestEnvironment(t)

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "wpg version")
}

func TestCompletionCommand(t *testing.T) {
	testutil.NewTestEnvironment(t)

	out, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "wpg")

	_, err = run(t, "completion", "tcsh")
	assert.Error(t, err)
}

func TestManCommand(t *testing.T) {
	testutil.NewTestEnvironment(t)
	dir := t.TempDir()

	_, err := run(t, "man", "--out", dir)
	require.NoError(t, err)
	assert.True(t, testutil.FileExists(t, filepath.Join(dir, "wpg.1")))
}
