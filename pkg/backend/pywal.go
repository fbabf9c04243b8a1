package backend

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/arthur-debert/wpg/pkg/errors"
	"github.com/arthur-debert/wpg/pkg/types"
)

// CacheVersion is the cache format version pywal embeds in file names
const CacheVersion = "1.1.0"

// BuiltinBackends is pywal's own backend set
var BuiltinBackends = []string{"colorthief", "colorz", "haishoku", "schemer2", "wal"}

// unsafeNameChars matches the characters pywal replaces in image paths.
// Backslashes are kept.
var unsafeNameChars = regexp.MustCompile(`[/|.]`)

// Pywal reproduces pywal's cache file naming natively.
// With Cols16 set it behaves like the 16-color fork, which only accepts
// the CacheFilename16 shape.
type Pywal struct {
	Cols16   bool
	Sat      string
	Settings types.Settings
	FS       types.FS
}

// NewPywal creates a Pywal adapter configured from settings
func NewPywal(fs types.FS, settings types.Settings) *Pywal {
	p := &Pywal{FS: fs, Settings: settings}
	if settings != nil {
		p.Cols16 = settings.Bool(types.SettingWalCols16, false)
	}
	return p
}

// CacheFilename returns [cacheDir, "schemes", "<file>_<type>_<backend>_<sat>_<size>_<version>.json"]
func (p *Pywal) CacheFilename(img, backend string, light bool, cacheDir string) ([]string, error) {
	if p.Cols16 {
		return nil, errors.New(errors.ErrSignatureMismatch, "16-color API requires the cols16 argument").
			WithDetail("api", "cols16")
	}

	size, err := p.fileSize(img)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s_%s_%s_%s_%d_%s.json",
		unsafeNameChars.ReplaceAllString(img, "_"), colorType(light), backend, p.Sat, size, CacheVersion)
	return []string{cacheDir, "schemes", name}, nil
}

// CacheFilename16 returns [cacheDir, "schemes", "<file>_<16|9>_<type>_<backend>_<sat>_<size>_<version>.json"]
func (p *Pywal) CacheFilename16(img, backend string, cols16, light bool, cacheDir string) ([]string, error) {
	if !p.Cols16 {
		return nil, errors.New(errors.ErrSignatureMismatch, "standard API does not accept the cols16 argument").
			WithDetail("api", "standard")
	}

	size, err := p.fileSize(img)
	if err != nil {
		return nil, err
	}

	colorNum := "9"
	if cols16 {
		colorNum = "16"
	}

	name := fmt.Sprintf("%s_%s_%s_%s_%s_%d_%s.json",
		unsafeNameChars.ReplaceAllString(img, "_"), colorNum, colorType(light), backend, p.Sat, size, CacheVersion)
	return []string{cacheDir, "schemes", name}, nil
}

// ListBackends returns the configured backends or pywal's built-in set
func (p *Pywal) ListBackends() []string {
	var list []string
	if p.Settings != nil {
		list = p.Settings.Strings(types.SettingBackends, nil)
	}
	if len(list) == 0 {
		list = BuiltinBackends
	}

	out := make([]string, len(list))
	copy(out, list)
	sort.Strings(out)
	return out
}

func (p *Pywal) fileSize(img string) (int64, error) {
	info, err := p.FS.Stat(img)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrBackendCompute, "failed to stat %s", img)
	}
	return info.Size(), nil
}

func colorType(light bool) string {
	if light {
		return "light"
	}
	return "dark"
}

var _ Generator = (*Pywal)(nil)
