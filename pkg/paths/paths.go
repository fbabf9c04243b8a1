package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/wpg/pkg/errors"
)

// Environment variable names
const (
	// EnvAppDir overrides the managed app directory
	EnvAppDir = "WPG_DIR"

	// EnvWallpapersDir overrides the wallpapers directory
	EnvWallpapersDir = "WPG_WALLPAPERS_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Directory and file names inside the app directory.
// These are NOT user-configurable; the restore script and the backend
// cache naming depend on them.
const (
	AppDirName        = "wpg"
	WallpapersDirName = "wallpapers"
	TemplatesDirName  = "templates"
	SamplesDirName    = "samples"
	SchemesDirName    = "schemes"
	CurrentName       = ".current"
	CurrentTmpName    = ".currentTmp"
	InitScriptName    = "wp_init.sh"
	ConfigFileName    = "wpg.toml"
	StylesFileName    = "styles.yaml"
)

// Paths provides centralized path management for wpg
type Paths interface {
	AppDir() string
	WallpapersDir() string
	TemplatesDir() string
	SamplesDir() string
	SchemesDir() string
	WallpaperPath(name string) string
	CurrentPath() string
	CurrentTmpPath() string
	InitScriptPath() string
	ConfigFilePath() string
	StylesFilePath() string
	EnsureLayout() error
}

type paths struct {
	appDir        string
	wallpapersDir string
}

// New creates a new Paths instance rooted at appDir.
// If appDir is empty, it is taken from WPG_DIR or $XDG_CONFIG_HOME/wpg.
func New(appDir string) (Paths, error) {
	p := &paths{}

	switch {
	case appDir != "":
		p.appDir = expandHome(appDir)
	case os.Getenv(EnvAppDir) != "":
		p.appDir = expandHome(os.Getenv(EnvAppDir))
	default:
		p.appDir = filepath.Join(configHome(), AppDirName)
	}

	absRoot, err := filepath.Abs(p.appDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for app dir")
	}
	p.appDir = absRoot

	if wallDir := os.Getenv(EnvWallpapersDir); wallDir != "" {
		abs, err := filepath.Abs(expandHome(wallDir))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for wallpapers dir")
		}
		p.wallpapersDir = abs
	} else {
		p.wallpapersDir = filepath.Join(p.appDir, WallpapersDirName)
	}

	return p, nil
}

// configHome honours a live XDG_CONFIG_HOME; xdg.ConfigHome is read once at init
func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	return xdg.ConfigHome
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

func (p *paths) AppDir() string {
	return p.appDir
}

func (p *paths) WallpapersDir() string {
	return p.wallpapersDir
}

func (p *paths) TemplatesDir() string {
	return filepath.Join(p.appDir, TemplatesDirName)
}

func (p *paths) SamplesDir() string {
	return filepath.Join(p.appDir, SamplesDirName)
}

// SchemesDir is where the backend writes cached colorschemes
func (p *paths) SchemesDir() string {
	return filepath.Join(p.appDir, SchemesDirName)
}

// WallpaperPath returns the absolute path of a wallpaper file
func (p *paths) WallpaperPath(name string) string {
	return filepath.Join(p.wallpapersDir, name)
}

func (p *paths) CurrentPath() string {
	return filepath.Join(p.appDir, CurrentName)
}

func (p *paths) CurrentTmpPath() string {
	return filepath.Join(p.appDir, CurrentTmpName)
}

func (p *paths) InitScriptPath() string {
	return filepath.Join(p.appDir, InitScriptName)
}

func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.appDir, ConfigFileName)
}

func (p *paths) StylesFilePath() string {
	return filepath.Join(p.appDir, StylesFileName)
}

// EnsureLayout creates every managed directory
func (p *paths) EnsureLayout() error {
	for _, dir := range []string{p.appDir, p.wallpapersDir, p.TemplatesDir(), p.SamplesDir(), p.SchemesDir()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir)
		}
	}
	return nil
}
