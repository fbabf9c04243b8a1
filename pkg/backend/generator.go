package backend

// Registry enumerates known backend names
type Registry interface {
	ListBackends() []string
}

// Generator is the contract of the external color-generation library.
// Both methods return path segments that join to the cache file path.
type Generator interface {
	Registry

	// CacheFilename is the primary API shape.
	CacheFilename(img, backend string, light bool, cacheDir string) ([]string, error)

	// CacheFilename16 is the alternate shape carrying the 16-color flag.
	CacheFilename16(img, backend string, cols16, light bool, cacheDir string) ([]string, error)
}

// Prober returns the help output of the installed tool
type Prober interface {
	HelpText() (string, error)
}

// Resolver computes the cache path of a wallpaper image for a backend
type Resolver interface {
	ResolveCachePath(path, backend string) (string, error)
}
