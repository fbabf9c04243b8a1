// Package colorschemes cleans up generated colorscheme artifacts.
package colorschemes

import (
	"github.com/arthur-debert/wpg/pkg/artifacts"
	"github.com/arthur-debert/wpg/pkg/backend"
	"github.com/arthur-debert/wpg/pkg/errors"
	"github.com/arthur-debert/wpg/pkg/logging"
	"github.com/arthur-debert/wpg/pkg/types"
)

// Failure is one artifact that could not be removed
type Failure struct {
	Backend string
	// Path is empty when the cache path itself could not be computed
	Path string
	Kind errors.Kind
	Err  error
}

// Report summarizes a cleanup run
type Report struct {
	Removed  []string
	Missing  []string
	Failures []Failure
}

// Janitor removes cache and sample files across all backends
type Janitor struct {
	fs       types.FS
	registry backend.Registry
	resolver *artifacts.Resolver
}

// NewJanitor creates a Janitor
func NewJanitor(fs types.FS, registry backend.Registry, resolver *artifacts.Resolver) *Janitor {
	return &Janitor{
		fs:       fs,
		registry: registry,
		resolver: resolver,
	}
}

// DeleteColorschemes removes the cache file and the sample image of
// colorscheme for every registered backend. Each removal is independent
// and nothing is returned as an error; the Report says what happened.
func (j *Janitor) DeleteColorschemes(colorscheme string) Report {
	logger := logging.GetLogger("colorschemes")
	done := logging.LogOperationStart(logger, "delete_colorschemes")
	defer done()

	var report Report
	for _, name := range j.registry.ListBackends() {
		cachePath, err := j.resolver.CachePath(colorscheme, name)
		if err != nil {
			logger.Debug().Err(err).Str("backend", name).Msg("cannot compute cache path")
			report.add(name, "", err)
		} else {
			report.add(name, cachePath, j.fs.Remove(cachePath))
		}

		samplePath := j.resolver.SamplePath(colorscheme, name)
		report.add(name, samplePath, j.fs.Remove(samplePath))
	}

	logger.Info().
		Str("colorscheme", colorscheme).
		Int("removed", len(report.Removed)).
		Int("failed", len(report.Failures)).
		Msg("colorscheme cleanup finished")
	return report
}

func (r *Report) add(backendName, path string, err error) {
	switch {
	case err == nil:
		r.Removed = append(r.Removed, path)
	case path != "" && errors.KindOf(err) == errors.KindNotFound:
		r.Missing = append(r.Missing, path)
	default:
		logger := logging.GetLogger("colorschemes")
		logger.Warn().Err(err).Str("path", path).Msg("failed to remove artifact")
		r.Failures = append(r.Failures, Failure{
			Backend: backendName,
			Path:    path,
			Kind:    errors.KindOf(err),
			Err:     err,
		})
	}
}
