package templates

import (
	"io/fs"
	"path/filepath"
	"regexp"

	"github.com/arthur-debert/wpg/pkg/artifacts"
	"github.com/arthur-debert/wpg/pkg/types"
)

var basePattern = `.*` + regexp.QuoteMeta(types.BaseSuffix)

// List returns every template in the templates directory, sorted by name
func (s *Store) List() ([]types.Template, error) {
	dir := s.paths.TemplatesDir()

	names, err := artifacts.ListFiles(s.fs, dir, basePattern)
	if err != nil {
		return nil, err
	}

	templates := make([]types.Template, 0, len(names))
	for _, name := range names {
		tmpl := types.Template{
			Name:     name,
			BasePath: filepath.Join(dir, name),
			LinkPath: filepath.Join(dir, LinkName(name)),
		}
		if info, err := s.fs.Lstat(tmpl.LinkPath); err == nil && info.Mode()&fs.ModeSymlink != 0 {
			if target, err := s.fs.Readlink(tmpl.LinkPath); err == nil {
				tmpl.Target = target
				tmpl.Linked = true
			}
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}
