package wpg

import (
	"fmt"

	"github.com/arthur-debert/wpg/pkg/artifacts"
	"github.com/arthur-debert/wpg/pkg/backend"
	"github.com/arthur-debert/wpg/pkg/colorschemes"
	"github.com/arthur-debert/wpg/pkg/config"
	"github.com/arthur-debert/wpg/pkg/current"
	"github.com/arthur-debert/wpg/pkg/filesystem"
	"github.com/arthur-debert/wpg/pkg/paths"
	"github.com/arthur-debert/wpg/pkg/shell"
	"github.com/arthur-debert/wpg/pkg/style"
	"github.com/arthur-debert/wpg/pkg/templates"
	"github.com/arthur-debert/wpg/pkg/types"
)

// app wires the core components for one command invocation
type app struct {
	fs       types.FS
	paths    paths.Paths
	settings *config.Settings
	styles   *style.Registry

	shim *backend.Shim
}

func newApp(appDir string) (*app, error) {
	p, err := paths.New(appDir)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	settings, err := config.Load(p.ConfigFilePath())
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadSettings, err)
	}

	styles, err := style.Load(p.StylesFilePath())
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadStyles, err)
	}

	fs := filesystem.NewOS()
	return &app{
		fs:       fs,
		paths:    p,
		settings: settings,
		styles:   styles,
		shim: backend.NewShim(
			backend.NewPywal(fs, settings),
			backend.NewCommandProber(settings),
			p.AppDir(),
		),
	}, nil
}

func (a *app) resolver() *artifacts.Resolver {
	return artifacts.NewResolver(a.fs, a.paths, a.settings, a.shim)
}

func (a *app) janitor() *colorschemes.Janitor {
	return colorschemes.NewJanitor(a.fs, a.shim.Registry(), a.resolver())
}

func (a *app) templates() *templates.Store {
	return templates.NewStore(a.fs, a.paths)
}

func (a *app) pointer() *current.Pointer {
	return current.New(a.fs, a.paths)
}

func (a *app) scriptWriter() *shell.Writer {
	return shell.NewWriter(a.fs, a.paths, a.settings)
}
