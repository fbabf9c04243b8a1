package artifacts

import (
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/arthur-debert/wpg/pkg/errors"
	"github.com/arthur-debert/wpg/pkg/logging"
	"github.com/arthur-debert/wpg/pkg/types"
)

// ListFiles returns the sorted names of the non-directory entries directly
// inside dir. A non-empty pattern must match the whole name.
//
// A missing or unreadable directory yields an empty list; only an invalid
// pattern is an error.
func ListFiles(fsys types.FS, dir, pattern string) ([]string, error) {
	logger := logging.GetLogger("artifacts.list")

	var re *regexp.Regexp
	if pattern != "" {
		var err error
		re, err = regexp.Compile(`^(?:` + pattern + `)$`)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid pattern %q", pattern).
				WithDetail("pattern", pattern)
		}
	}

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		if errors.KindOf(err) == errors.KindNotFound {
			logger.Debug().Str("dir", dir).Msg("directory does not exist, nothing to list")
		} else {
			logger.Warn().Err(err).Str("dir", dir).Msg("cannot read directory")
		}
		return []string{}, nil
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if isDir(fsys, dir, entry) {
			continue
		}
		if re != nil && !re.MatchString(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}

	sort.Strings(names)
	return names, nil
}

// isDir follows symlinks so a link to a directory is not listed as a file
func isDir(fsys types.FS, dir string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := fsys.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		return false
	}
	return info.IsDir()
}
