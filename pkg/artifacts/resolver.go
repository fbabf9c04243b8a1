package artifacts

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/wpg/pkg/backend"
	"github.com/arthur-debert/wpg/pkg/paths"
	"github.com/arthur-debert/wpg/pkg/types"
)

// SampleSuffix ends every sample image name
const SampleSuffix = "_sample.png"

// Resolver maps (wallpaper, backend) pairs to artifact paths
type Resolver struct {
	fs       types.FS
	paths    paths.Paths
	settings types.Settings
	backend  backend.Resolver
}

// NewResolver creates a Resolver. Cache paths are delegated to cache,
// which must be rooted at the app directory.
func NewResolver(fs types.FS, p paths.Paths, settings types.Settings, cache backend.Resolver) *Resolver {
	return &Resolver{
		fs:       fs,
		paths:    p,
		settings: settings,
		backend:  cache,
	}
}

// CachePath returns the cached colorscheme file for wallpaper.
// An empty backendName means the configured backend.
func (r *Resolver) CachePath(wallpaper, backendName string) (string, error) {
	return r.backend.ResolveCachePath(r.paths.WallpaperPath(wallpaper), r.backendOrDefault(backendName))
}

// SamplePath returns <samples>/<wallpaper>_<backend>_sample.png
func (r *Resolver) SamplePath(wallpaper, backendName string) string {
	name := fmt.Sprintf("%s_%s%s", wallpaper, r.backendOrDefault(backendName), SampleSuffix)
	return filepath.Join(r.paths.SamplesDir(), name)
}

// Wallpapers lists the wallpapers directory
func (r *Resolver) Wallpapers() ([]string, error) {
	return ListFiles(r.fs, r.paths.WallpapersDir(), "")
}

func (r *Resolver) backendOrDefault(name string) string {
	if name != "" {
		return name
	}
	return types.Backend(r.settings)
}
