// pkg/testutil/environment.go
// DEPENDENCIES: paths, config, filesystem
// PURPOSE: Isolated wpg layouts for tests

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wpg/pkg/config"
	"github.com/arthur-debert/wpg/pkg/filesystem"
	"github.com/arthur-debert/wpg/pkg/paths"
	"github.com/arthur-debert/wpg/pkg/types"
)

// TestEnvironment is a complete wpg layout inside a temp directory
type TestEnvironment struct {
	// Root is the temp directory everything lives under
	Root string

	// HomeDir stands in for $HOME; external config files go here
	HomeDir string

	FS       types.FS
	Paths    paths.Paths
	Settings types.Settings

	t *testing.T
}

// NewTestEnvironment creates the app layout with default settings.
// WPG_DIR, WPG_WALLPAPERS_DIR, HOME and XDG_STATE_HOME are pointed into
// the temp directory for the duration of the test.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		Root:    root,
		HomeDir: filepath.Join(root, "home"),
		FS:      filesystem.NewOS(),
		t:       t,
	}

	appDir := filepath.Join(root, "app")
	t.Setenv(paths.EnvAppDir, appDir)
	t.Setenv(paths.EnvWallpapersDir, "")
	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))

	p, err := paths.New(appDir)
	if err != nil {
		t.Fatalf("Failed to create paths: %v", err)
	}
	if err := p.EnsureLayout(); err != nil {
		t.Fatalf("Failed to create layout: %v", err)
	}
	env.Paths = p

	CreateDir(t, root, "home")
	env.WithSettings(nil)

	return env
}

// WithSettings replaces the environment settings with defaults overlaid by values
func (env *TestEnvironment) WithSettings(values map[string]interface{}) *TestEnvironment {
	env.t.Helper()

	if values == nil {
		values = map[string]interface{}{}
	}
	settings, err := config.NewFromMap(values)
	if err != nil {
		env.t.Fatalf("Failed to build settings: %v", err)
	}
	env.Settings = settings
	return env
}

// AddWallpaper writes a wallpaper file and returns its absolute path
func (env *TestEnvironment) AddWallpaper(name, content string) string {
	env.t.Helper()
	return CreateFile(env.t, env.Paths.WallpapersDir(), name, content)
}

// AddHomeFile writes a file under the fake home directory
func (env *TestEnvironment) AddHomeFile(rel, content string) string {
	env.t.Helper()
	return CreateFile(env.t, env.HomeDir, rel, content)
}
