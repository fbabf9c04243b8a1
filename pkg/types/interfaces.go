package types

import (
	"io/fs"
	"time"
)

// FS is the filesystem interface required for wpg operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Chmod(name string, mode fs.FileMode) error
	Chtimes(name string, atime, mtime time.Time) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)
	Lstat(name string) (fs.FileInfo, error)
	EvalSymlinks(path string) (string, error)

	// Other operations
	Remove(name string) error
	Rename(oldpath, newpath string) error
}

// Settings is the typed, read-only view over user options.
// Components receive it explicitly; nothing reads a global.
type Settings interface {
	String(key, def string) string
	Bool(key string, def bool) bool
	Strings(key string, def []string) []string
}
