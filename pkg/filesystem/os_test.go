package filesystem

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	assert.NotNil(t, fs)

	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.txt")
	testContent := []byte("hello world")

	err := fs.WriteFile(testFile, testContent, 0644)
	require.NoError(t, err)

	info, err := fs.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	subDir := filepath.Join(tmpDir, "sub", "dir")
	require.NoError(t, fs.MkdirAll(subDir, 0755))

	entries, err := fs.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2) // test.txt and sub/

	link := filepath.Join(tmpDir, "link")
	require.NoError(t, fs.Symlink(testFile, link))

	target, err := fs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, testFile, target)

	linfo, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, linfo.Mode()&os.ModeSymlink)

	resolved, err := fs.EvalSymlinks(link)
	require.NoError(t, err)
	expected, err := filepath.EvalSymlinks(testFile)
	require.NoError(t, err)
	assert.Equal(t, expected, resolved)

	moved := filepath.Join(tmpDir, "moved")
	require.NoError(t, fs.Rename(link, moved))
	_, err = fs.Lstat(link)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, fs.Remove(testFile))
	_, err = fs.Stat(testFile)
	assert.True(t, os.IsNotExist(err))
}

func TestCopyFile(t *testing.T) {
	fs := NewOS()
	dir := t.TempDir()

	src := filepath.Join(dir, "src.conf")
	dst := filepath.Join(dir, "dst.conf")

	require.NoError(t, os.WriteFile(src, []byte("color0=#000000\n"), 0600))
	mtime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, mtime, mtime))

	t.Run("creates_destination_with_metadata", func(t *testing.T) {
		require.NoError(t, CopyFile(fs, src, dst))

		content, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "color0=#000000\n", string(content))

		info, err := os.Stat(dst)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
		assert.True(t, info.ModTime().Equal(mtime))
	})

	t.Run("overwrites_existing_destination", func(t *testing.T) {
		require.NoError(t, os.WriteFile(dst, []byte("stale content that is longer"), 0644))

		require.NoError(t, CopyFile(fs, src, dst))

		content, err := os.ReadFile(dst)
		require.NoError(t, err)
		assert.Equal(t, "color0=#000000\n", string(content))

		info, err := os.Stat(dst)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("missing_source", func(t *testing.T) {
		err := CopyFile(fs, filepath.Join(dir, "nope"), filepath.Join(dir, "out"))
		require.Error(t, err)
		assert.True(t, os.IsNotExist(err))
	})
}
