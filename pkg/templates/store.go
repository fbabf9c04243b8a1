package templates

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/wpg/pkg/errors"
	"github.com/arthur-debert/wpg/pkg/filesystem"
	"github.com/arthur-debert/wpg/pkg/logging"
	"github.com/arthur-debert/wpg/pkg/paths"
	"github.com/arthur-debert/wpg/pkg/types"
)

// nameSegments is how many trailing path segments form a synthesized name
const nameSegments = 3

// Store adds, removes and lists templates
type Store struct {
	fs    types.FS
	paths paths.Paths
}

// NewStore creates a Store over the templates directory of p
func NewStore(fs types.FS, p paths.Paths) *Store {
	return &Store{fs: fs, paths: p}
}

// TemplateName returns the base filename for configFile.
// An explicit baseFile wins and is used as-is (its last element only).
// Otherwise the last three segments of configFile, each stripped of
// leading dots, are joined with "_" and suffixed with .base:
//
//	/home/u/.config/kitty/kitty.conf -> config_kitty_kitty.conf.base
func TemplateName(configFile, baseFile string) string {
	if baseFile != "" {
		return filepath.Base(baseFile)
	}

	segments := strings.Split(filepath.ToSlash(configFile), "/")
	if len(segments) > nameSegments {
		segments = segments[len(segments)-nameSegments:]
	}

	clean := make([]string, len(segments))
	for i, segment := range segments {
		clean[i] = strings.TrimLeft(segment, ".")
	}
	return strings.Join(clean, "_") + types.BaseSuffix
}

// LinkName strips the .base suffix from a base filename
func LinkName(baseName string) string {
	return strings.TrimSuffix(baseName, types.BaseSuffix)
}

// Add registers configFile as a template.
//
// The config file is resolved to an absolute, symlink-free path and backed
// up to <config>.bak. A failed resolve or backup aborts and is returned.
// After the backup every step is best-effort: copying the source (baseFile
// if given, else configFile) into the templates directory and linking
// <name> to the config file log their failures and do not return them.
// An existing <name> symlink is replaced, so adding twice is safe.
func (s *Store) Add(configFile, baseFile string) (types.Template, error) {
	logger := logging.GetLogger("templates")
	done := logging.LogOperationStart(logger, "add_template")
	defer done()

	resolved, err := s.resolve(configFile)
	if err != nil {
		return types.Template{}, err
	}

	name := TemplateName(resolved, baseFile)
	tmpl := types.Template{
		Name:     name,
		BasePath: filepath.Join(s.paths.TemplatesDir(), name),
		LinkPath: filepath.Join(s.paths.TemplatesDir(), LinkName(name)),
	}

	backup := resolved + types.BackupSuffix
	if err := filesystem.CopyFile(s.fs, resolved, backup); err != nil {
		return tmpl, errors.Wrapf(err, errors.ErrBackup, "failed to back up %s", resolved).
			WithDetail("backup", backup)
	}
	logger.Info().Str("backup", backup).Msg("created backup")

	src := resolved
	if baseFile != "" {
		src = baseFile
	}
	if err := s.copySource(src, tmpl.BasePath); err != nil {
		logger.Error().Err(err).
			Str("source", src).
			Str("code", string(errors.GetErrorCode(err))).
			Str("kind", errors.KindOf(err).String()).
			Msg("failed to copy template source")
		return tmpl, nil
	}

	if err := s.link(resolved, tmpl.LinkPath); err != nil {
		logger.Error().Err(err).
			Str("link", tmpl.LinkPath).
			Str("code", string(errors.GetErrorCode(err))).
			Str("kind", errors.KindOf(err).String()).
			Msg("failed to link template")
		return tmpl, nil
	}
	tmpl.Target = resolved
	tmpl.Linked = true

	logger.Info().Str("template", name).Str("config", resolved).Msg("added template")
	return tmpl, nil
}

func (s *Store) resolve(configFile string) (string, error) {
	abs, err := filepath.Abs(configFile)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", configFile)
	}

	resolved, err := s.fs.EvalSymlinks(abs)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to resolve %s", abs).
			WithDetail("path", abs)
	}
	return resolved, nil
}

func (s *Store) copySource(src, basePath string) error {
	if err := filesystem.CopyFile(s.fs, src, basePath); err != nil {
		return errors.Wrapf(err, errors.ErrTemplateCopy, "failed to copy %s to %s", src, basePath).
			WithDetail("source", src)
	}
	return nil
}

// link points linkPath at target, replacing a previous symlink but never a
// regular file.
func (s *Store) link(target, linkPath string) error {
	if info, err := s.fs.Lstat(linkPath); err == nil {
		if info.Mode()&fs.ModeSymlink == 0 {
			return errors.Newf(errors.ErrAlreadyExists, "%s exists and is not a symlink", linkPath)
		}
		if err := s.fs.Remove(linkPath); err != nil {
			return errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to replace %s", linkPath)
		}
	}

	if err := s.fs.Symlink(target, linkPath); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to link %s -> %s", linkPath, target)
	}
	return nil
}
