package backend

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/arthur-debert/wpg/pkg/errors"
	"github.com/arthur-debert/wpg/pkg/logging"
)

// Cols16Flag in the tool's help text marks the alternate API shape
const Cols16Flag = "--cols16"

// Shim resolves cache paths across both Generator API shapes.
// Detection runs lazily, at most once per Shim.
type Shim struct {
	gen      Generator
	prober   Prober
	cacheDir string

	once   sync.Once
	cols16 bool
}

// NewShim creates a Shim that writes cache paths under cacheDir
func NewShim(gen Generator, prober Prober, cacheDir string) *Shim {
	return &Shim{
		gen:      gen,
		prober:   prober,
		cacheDir: cacheDir,
	}
}

// ResolveCachePath implements Resolver
func (s *Shim) ResolveCachePath(path, backend string) (string, error) {
	segments, err := s.gen.CacheFilename(path, backend, false, s.cacheDir)
	if err == nil {
		return filepath.Join(segments...), nil
	}
	if !errors.IsErrorCode(err, errors.ErrSignatureMismatch) {
		return "", err
	}

	if !s.detectCols16() {
		return "", err
	}

	segments, err = s.gen.CacheFilename16(path, backend, true, false, s.cacheDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(segments...), nil
}

// Registry exposes the generator's backend list
func (s *Shim) Registry() Registry {
	return s.gen
}

func (s *Shim) detectCols16() bool {
	s.once.Do(func() {
		logger := logging.GetLogger("backend.shim")

		help, err := s.prober.HelpText()
		if err != nil {
			logger.Warn().Err(err).Msg("backend probe failed, assuming standard API")
			return
		}

		s.cols16 = strings.Contains(help, Cols16Flag)
		logger.Debug().Bool("cols16", s.cols16).Msg("detected backend API")
	})
	return s.cols16
}

var _ Resolver = (*Shim)(nil)
