package backend

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/wpg/pkg/config"
	"github.com/arthur-debert/wpg/pkg/errors"
	"github.com/arthur-debert/wpg/pkg/filesystem"
	"github.com/arthur-debert/wpg/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T, size int) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "walls")
	require.NoError(t, os.MkdirAll(dir, 0755))
	img := filepath.Join(dir, "sun.set.jpg")
	require.NoError(t, os.WriteFile(img, []byte(strings.Repeat("x", size)), 0644))
	return img
}

func TestPywal_CacheFilename(t *testing.T) {
	img := writeImage(t, 1234)
	p := &Pywal{FS: filesystem.NewOS()}

	segments, err := p.CacheFilename(img, "wal", false, "/app")
	require.NoError(t, err)
	require.Len(t, segments, 3)

	expectedName := strings.NewReplacer("/", "_", ".", "_").Replace(img) + "_dark_wal__1234_1.1.0.json"
	assert.Equal(t, []string{"/app", "schemes", expectedName}, segments)

	segments, err = p.CacheFilename(img, "colorz", true, "/app")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(segments[2], "_light_colorz__1234_1.1.0.json"))
}

func TestPywal_NameEscaping(t *testing.T) {
	tests := []struct {
		name string
		img  string
		want string
	}{
		{"separators_and_dots", "/walls/beach.jpg", "_walls_beach_jpg"},
		{"pipe", "a|b", "a_b"},
		{"backslash_kept", `/a.b|c\d/e`, `_a_b_c\d_e`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, unsafeNameChars.ReplaceAllString(tt.img, "_"))
		})
	}
}

func TestPywal_CacheFilenameKeepsBackslash(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, `sun\set.png`)
	require.NoError(t, os.WriteFile(img, make([]byte, 7), 0644))

	p := &Pywal{FS: filesystem.NewOS()}
	segments, err := p.CacheFilename(img, "wal", false, "/app")
	require.NoError(t, err)

	assert.Contains(t, segments[2], `sun\set_png_dark_wal__7_1.1.0.json`)
}

func TestPywal_CacheFilename16(t *testing.T) {
	img := writeImage(t, 10)
	p := &Pywal{FS: filesystem.NewOS(), Cols16: true}

	segments, err := p.CacheFilename16(img, "wal", true, false, "/app")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(segments[2], "_16_dark_wal__10_1.1.0.json"), segments[2])

	segments, err = p.CacheFilename16(img, "wal", false, false, "/app")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(segments[2], "_9_dark_wal__10_1.1.0.json"), segments[2])
}

func TestPywal_SignatureMismatch(t *testing.T) {
	img := writeImage(t, 1)

	_, err := (&Pywal{FS: filesystem.NewOS(), Cols16: true}).CacheFilename(img, "wal", false, "/app")
	assert.True(t, errors.IsErrorCode(err, errors.ErrSignatureMismatch))

	_, err = (&Pywal{FS: filesystem.NewOS()}).CacheFilename16(img, "wal", true, false, "/app")
	assert.True(t, errors.IsErrorCode(err, errors.ErrSignatureMismatch))
}

func TestPywal_MissingImage(t *testing.T) {
	p := &Pywal{FS: filesystem.NewOS()}

	_, err := p.CacheFilename(filepath.Join(t.TempDir(), "gone.jpg"), "wal", false, "/app")
	require.Error(t, err)
	assert.Equal(t, errors.KindNotFound, errors.KindOf(err))
	assert.False(t, errors.IsErrorCode(err, errors.ErrSignatureMismatch))
}

func TestPywal_ShimEndToEnd(t *testing.T) {
	img := writeImage(t, 42)
	settings, err := config.NewFromMap(map[string]interface{}{types.SettingWalCols16: true})
	require.NoError(t, err)

	shim := NewShim(NewPywal(filesystem.NewOS(), settings), &fakeProber{help: "  --cols16  use 16 colors"}, "/app")

	path, err := shim.ResolveCachePath(img, "wal")
	require.NoError(t, err)
	assert.Equal(t, "/app/schemes", filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, "_16_dark_wal__42_1.1.0.json"), path)
}

func TestPywal_ListBackends(t *testing.T) {
	t.Run("builtin", func(t *testing.T) {
		p := NewPywal(filesystem.NewOS(), nil)
		assert.Equal(t, BuiltinBackends, p.ListBackends())
	})

	t.Run("settings_override", func(t *testing.T) {
		settings, err := config.NewFromMap(map[string]interface{}{
			types.SettingBackends: []string{"wal", "colorz"},
		})
		require.NoError(t, err)

		p := NewPywal(filesystem.NewOS(), settings)
		assert.Equal(t, []string{"colorz", "wal"}, p.ListBackends())
	})
}
