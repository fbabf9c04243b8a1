// Package style defines the visual styling of wpg's terminal output.
//
// Styles have semantic names and adaptive colors that follow the terminal's
// light or dark background. Defaults are embedded; a styles.yaml in the app
// directory overrides colors and styles by name.
package style

import (
	_ "embed"
	"os"

	"github.com/arthur-debert/wpg/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed embedded/styles.yaml
var defaultStyles []byte

// Semantic style names
const (
	Title   = "Title"
	Name    = "Name"
	Path    = "Path"
	Link    = "Link"
	Muted   = "Muted"
	Success = "Success"
	Error   = "Error"
	Warning = "Warning"
	Item    = "Item"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Background   string `yaml:"background,omitempty"`
	Width        int    `yaml:"width,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to lipgloss styles
type Registry struct {
	styles map[string]lipgloss.Style
}

// Default returns the embedded styles
func Default() *Registry {
	cfg, err := parse(defaultStyles)
	if err != nil {
		// embedded at build time
		panic(err)
	}
	return build(cfg)
}

// Load returns the embedded styles with the file at path merged over them.
// A missing file is not an error.
func Load(path string) (*Registry, error) {
	cfg, err := parse(defaultStyles)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return build(cfg), nil
		}
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read styles file %s", path)
	}

	user, err := parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}
	for name, def := range user.Colors {
		cfg.Colors[name] = def
	}
	for name, def := range user.Styles {
		cfg.Styles[name] = def
	}

	return build(cfg), nil
}

func parse(data []byte) (*Config, error) {
	cfg := &Config{
		Colors: map[string]ColorDef{},
		Styles: map[string]StyleDef{},
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func build(cfg *Config) *Registry {
	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	r := &Registry{styles: make(map[string]lipgloss.Style, len(cfg.Styles))}
	for name, def := range cfg.Styles {
		r.styles[name] = buildStyle(def, colors)
	}
	return r
}

func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	// unknown color names are ignored
	if color, ok := colors[def.Foreground]; ok {
		style = style.Foreground(color)
	}
	if color, ok := colors[def.Background]; ok {
		style = style.Background(color)
	}

	if def.Width > 0 {
		style = style.Width(def.Width)
	}
	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}
	if def.PaddingLeft > 0 {
		style = style.PaddingLeft(def.PaddingLeft)
	}

	return style
}

// Get returns the named style, or a plain style when unknown
func (r *Registry) Get(name string) lipgloss.Style {
	if style, ok := r.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Has reports whether name is defined
func (r *Registry) Has(name string) bool {
	_, ok := r.styles[name]
	return ok
}

// Render applies the named style to s
func (r *Registry) Render(name, s string) string {
	return r.Get(name).Render(s)
}

// Indicator renders a check mark or a cross
func (r *Registry) Indicator(ok bool) string {
	if ok {
		return r.Render(Success, "✓")
	}
	return r.Render(Error, "✗")
}
