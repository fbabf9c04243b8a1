package filesystem

import (
	"github.com/arthur-debert/wpg/pkg/types"
)

// CopyFile copies src to dst, overwriting dst, and carries over the
// permission bits and modification time of src.
func CopyFile(fsys types.FS, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}

	data, err := fsys.ReadFile(src)
	if err != nil {
		return err
	}

	mode := info.Mode().Perm()
	if err := fsys.WriteFile(dst, data, mode); err != nil {
		return err
	}
	// WriteFile only applies perm on create
	if err := fsys.Chmod(dst, mode); err != nil {
		return err
	}

	return fsys.Chtimes(dst, info.ModTime(), info.ModTime())
}
