package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wpg/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "wpg.toml")

	written, err := WriteDefault(path)
	require.NoError(t, err)
	assert.True(t, written)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultContent(), string(content))

	written, err = WriteDefault(path)
	require.NoError(t, err)
	assert.False(t, written, "existing file must not be overwritten")
}

func TestSet(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "wpg.toml")

	require.NoError(t, Set(path, types.SettingLightTheme, "false"))
	require.NoError(t, Set(path, types.SettingBackend, "colorz"))
	require.NoError(t, Set(path, types.SettingBackends, "wal,colorz"))

	s, err := Load(path)
	require.NoError(t, err)

	assert.False(t, s.Bool(types.SettingLightTheme, true))
	assert.Equal(t, "colorz", s.String(types.SettingBackend, "wal"))
	assert.Equal(t, []string{"wal", "colorz"}, s.Strings(types.SettingBackends, nil))
}

func TestTypedValue(t *testing.T) {
	assert.Equal(t, true, typedValue(types.SettingSetWallpaper, "true"))
	assert.Equal(t, "1", typedValue(types.SettingBackend, "1"))
	assert.Equal(t, "wal16", typedValue(types.SettingWalCommand, "wal16"))
	assert.Equal(t, []string{}, typedValue(types.SettingBackends, ""))
}
