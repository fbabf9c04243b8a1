package backend

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/wpg/pkg/config"
	"github.com/arthur-debert/wpg/pkg/errors"
	"github.com/arthur-debert/wpg/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeTool(t *testing.T, helpText string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wal")
	script := "#!/bin/sh\necho '" + helpText + "'\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0755))
	return path
}

func TestCommandProber(t *testing.T) {
	t.Run("returns_help_output", func(t *testing.T) {
		prober := &CommandProber{Command: fakeTool(t, "usage: wal [--cols16]")}

		help, err := prober.HelpText()
		require.NoError(t, err)
		assert.Contains(t, help, Cols16Flag)
	})

	t.Run("missing_tool", func(t *testing.T) {
		prober := &CommandProber{Command: filepath.Join(t.TempDir(), "nope")}

		_, err := prober.HelpText()
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrBackendProbe))
	})

	t.Run("command_from_settings", func(t *testing.T) {
		settings, err := config.NewFromMap(map[string]interface{}{types.SettingWalCommand: "wal16"})
		require.NoError(t, err)

		assert.Equal(t, "wal16", NewCommandProber(settings).Command)
		assert.Equal(t, "wal", NewCommandProber(nil).Command)
	})
}
