package templates

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/wpg/pkg/errors"
	"github.com/arthur-debert/wpg/pkg/logging"
)

// Outcome records what happened to one file during a delete
type Outcome struct {
	Path    string
	Removed bool
	// Kind is KindNone when the file was removed or there was nothing to do
	Kind errors.Kind
	Err  error
}

// Result is the per-file report of Delete
type Result struct {
	Base Outcome
	Link Outcome
}

// OK reports whether nothing failed
func (r Result) OK() bool {
	return r.Base.Err == nil && r.Link.Err == nil
}

// Delete removes <baseName> from the templates directory and, when it is a
// symlink, its <name> counterpart. Nothing is returned as an error: every
// failure is logged and recorded in the Result. A base file without a link
// is a valid state.
func (s *Store) Delete(baseName string) Result {
	logger := logging.GetLogger("templates")
	done := logging.LogOperationStart(logger, "delete_template")
	defer done()

	basePath := filepath.Join(s.paths.TemplatesDir(), baseName)
	linkPath := filepath.Join(s.paths.TemplatesDir(), LinkName(baseName))

	result := Result{
		Base: s.remove(basePath),
		Link: Outcome{Path: linkPath},
	}

	// A name without .base would make the link the base file itself
	if linkPath == basePath {
		return result
	}

	info, err := s.fs.Lstat(linkPath)
	switch {
	case err != nil:
		if errors.KindOf(err) != errors.KindNotFound {
			logger.Error().Err(err).Str("path", linkPath).Msg("cannot inspect template link")
			result.Link.Err = err
			result.Link.Kind = errors.KindOf(err)
		}
	case info.Mode()&fs.ModeSymlink != 0:
		result.Link = s.remove(linkPath)
	default:
		logger.Warn().Str("path", linkPath).Msg("template link is not a symlink, leaving it")
	}

	return result
}

func (s *Store) remove(path string) Outcome {
	logger := logging.GetLogger("templates")

	if err := s.fs.Remove(path); err != nil {
		kind := errors.KindOf(err)
		logger.Error().Err(err).Str("path", path).Str("kind", kind.String()).Msg("failed to remove")
		return Outcome{Path: path, Kind: kind, Err: err}
	}

	logger.Info().Str("path", path).Msg("removed")
	return Outcome{Path: path, Removed: true}
}
