// Package current maintains the .current pointer to the active wallpaper.
//
// The pointer is replaced by creating .currentTmp and renaming it over
// .current, so readers see either the old or the new target. There is no
// locking: concurrent writers race and the last rename wins.
package current

import (
	"path/filepath"

	"github.com/arthur-debert/wpg/pkg/errors"
	"github.com/arthur-debert/wpg/pkg/logging"
	"github.com/arthur-debert/wpg/pkg/paths"
	"github.com/arthur-debert/wpg/pkg/types"
)

// Pointer reads and swaps the .current symlink
type Pointer struct {
	fs    types.FS
	paths paths.Paths
}

// New creates a Pointer
func New(fs types.FS, p paths.Paths) *Pointer {
	return &Pointer{fs: fs, paths: p}
}

// Change points .current at <wallpapers>/<filename>
func (c *Pointer) Change(filename string) error {
	logger := logging.GetLogger("current")

	target := c.paths.WallpaperPath(filename)
	tmp := c.paths.CurrentTmpPath()

	// left behind by an interrupted run
	if _, err := c.fs.Lstat(tmp); err == nil {
		logger.Debug().Str("path", tmp).Msg("removing stale temporary pointer")
		if err := c.fs.Remove(tmp); err != nil {
			return errors.Wrapf(err, errors.ErrSymlinkSwap, "failed to remove stale %s", tmp)
		}
	}

	if err := c.fs.Symlink(target, tmp); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to link %s -> %s", tmp, target)
	}
	if err := c.fs.Rename(tmp, c.paths.CurrentPath()); err != nil {
		_ = c.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrSymlinkSwap, "failed to replace %s", c.paths.CurrentPath())
	}

	logger.Info().Str("wallpaper", filename).Msg("current wallpaper changed")
	return nil
}

// Get returns the wallpaper filename .current points at
func (c *Pointer) Get() (string, error) {
	target, err := c.fs.Readlink(c.paths.CurrentPath())
	if err != nil {
		if errors.KindOf(err) == errors.KindNotFound {
			return "", errors.Wrap(err, errors.ErrNotFound, "no current wallpaper set")
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", c.paths.CurrentPath())
	}
	return filepath.Base(target), nil
}
