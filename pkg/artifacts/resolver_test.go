package artifacts_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/wpg/pkg/artifacts"
	"github.com/arthur-debert/wpg/pkg/backend"
	"github.com/arthur-debert/wpg/pkg/testutil"
	"github.com/arthur-debert/wpg/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingResolver struct {
	path    string
	backend string
}

func (r *recordingResolver) ResolveCachePath(path, backendName string) (string, error) {
	r.path = path
	r.backend = backendName
	return filepath.Join("/cache", filepath.Base(path)+"."+backendName), nil
}

type noProbe struct{}

func (noProbe) HelpText() (string, error) { return "", nil }

func TestSamplePath(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	r := artifacts.NewResolver(env.FS, env.Paths, env.Settings, &recordingResolver{})

	tests := []struct {
		wallpaper string
		backend   string
		want      string
	}{
		{"sunset.jpg", "wal", "sunset.jpg_wal_sample.png"},
		{"sunset.jpg", "colorz", "sunset.jpg_colorz_sample.png"},
		{"my wall.png", "haishoku", "my wall.png_haishoku_sample.png"},
		{"sunset.jpg", "", "sunset.jpg_wal_sample.png"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := r.SamplePath(tt.wallpaper, tt.backend)
			assert.Equal(t, filepath.Join(env.Paths.SamplesDir(), tt.want), got)
			// deterministic and no file is created
			assert.Equal(t, got, r.SamplePath(tt.wallpaper, tt.backend))
			assert.False(t, testutil.FileExists(t, got))
		})
	}
}

func TestSamplePath_ConfiguredBackend(t *testing.T) {
	env := testutil.NewTestEnvironment(t).WithSettings(map[string]interface{}{
		types.SettingBackend: "schemer2",
	})
	r := artifacts.NewResolver(env.FS, env.Paths, env.Settings, &recordingResolver{})

	assert.Equal(t, filepath.Join(env.Paths.SamplesDir(), "a.png_schemer2_sample.png"), r.SamplePath("a.png", ""))
}

func TestCachePath(t *testing.T) {
	env := testutil.NewTestEnvironment(t)

	t.Run("delegates_with_wallpaper_path", func(t *testing.T) {
		rec := &recordingResolver{}
		r := artifacts.NewResolver(env.FS, env.Paths, env.Settings, rec)

		got, err := r.CachePath("sunset.jpg", "colorz")
		require.NoError(t, err)

		assert.Equal(t, "/cache/sunset.jpg.colorz", got)
		assert.Equal(t, env.Paths.WallpaperPath("sunset.jpg"), rec.path)
		assert.Equal(t, "colorz", rec.backend)
	})

	t.Run("default_backend", func(t *testing.T) {
		rec := &recordingResolver{}
		r := artifacts.NewResolver(env.FS, env.Paths, env.Settings, rec)

		_, err := r.CachePath("sunset.jpg", "")
		require.NoError(t, err)
		assert.Equal(t, "wal", rec.backend)
	})

	t.Run("matches_pywal_naming", func(t *testing.T) {
		wall := env.AddWallpaper("sunset.jpg", "12345")
		shim := backend.NewShim(backend.NewPywal(env.FS, env.Settings), noProbe{}, env.Paths.AppDir())
		r := artifacts.NewResolver(env.FS, env.Paths, env.Settings, shim)

		got, err := r.CachePath("sunset.jpg", "wal")
		require.NoError(t, err)

		name := strings.NewReplacer("/", "_", ".", "_").Replace(wall) + "_dark_wal__5_1.1.0.json"
		assert.Equal(t, filepath.Join(env.Paths.AppDir(), "schemes", name), got)
	})

	t.Run("missing_wallpaper_propagates", func(t *testing.T) {
		shim := backend.NewShim(backend.NewPywal(env.FS, env.Settings), noProbe{}, env.Paths.AppDir())
		r := artifacts.NewResolver(env.FS, env.Paths, env.Settings, shim)

		_, err := r.CachePath("nope.jpg", "wal")
		assert.Error(t, err)
	})
}

func TestWallpapers(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.AddWallpaper("b.png", "")
	env.AddWallpaper("a.jpg", "")
	testutil.CreateDir(t, env.Paths.WallpapersDir(), "sub")

	r := artifacts.NewResolver(env.FS, env.Paths, env.Settings, &recordingResolver{})
	walls, err := r.Wallpapers()
	require.NoError(t, err)

	assert.Equal(t, []string{"a.jpg", "b.png"}, walls)
}
