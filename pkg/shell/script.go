// Package shell writes the startup script that restores the active theme.
package shell

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/wpg/pkg/errors"
	"github.com/arthur-debert/wpg/pkg/logging"
	"github.com/arthur-debert/wpg/pkg/paths"
	"github.com/arthur-debert/wpg/pkg/types"
)

// Shebang is the first line of the startup script
const Shebang = "#!/usr/bin/env bash"

// Command is the executable the script invokes
const Command = "wpg"

// ScriptMode makes the script executable by everyone
const ScriptMode = 0755

// Flags encodes the restore options: "-L" for a light theme, otherwise
// "-", followed by "rs" when the wallpaper is set or "nrs" when it is not.
func Flags(settings types.Settings) string {
	flags := "-"
	if settings.Bool(types.SettingLightTheme, types.DefaultLightTheme) {
		flags = "-L"
	}
	if settings.Bool(types.SettingSetWallpaper, types.DefaultSetWallpaper) {
		return flags + "rs"
	}
	return flags + "nrs"
}

// Script renders the script body
func Script(settings types.Settings, wallpaper, colorscheme string) string {
	return fmt.Sprintf("%s\n%s %s %s %s\n", Shebang, Command, Flags(settings), quote(wallpaper), quote(colorscheme))
}

// quote wraps s in single quotes; embedded quotes become '\''
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Writer writes wp_init.sh into the app directory
type Writer struct {
	fs       types.FS
	paths    paths.Paths
	settings types.Settings
}

// NewWriter creates a Writer
func NewWriter(fs types.FS, p paths.Paths, settings types.Settings) *Writer {
	return &Writer{fs: fs, paths: p, settings: settings}
}

// WriteScript overwrites wp_init.sh and marks it executable
func (w *Writer) WriteScript(wallpaper, colorscheme string) error {
	logger := logging.GetLogger("shell")
	path := w.paths.InitScriptPath()

	if err := w.fs.WriteFile(path, []byte(Script(w.settings, wallpaper, colorscheme)), ScriptMode); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	if err := w.fs.Chmod(path, ScriptMode); err != nil {
		return errors.Wrapf(err, errors.ErrPermission, "failed to make %s executable", path)
	}

	logger.Info().Str("path", path).Str("wallpaper", wallpaper).Str("colorscheme", colorscheme).Msg("wrote startup script")
	return nil
}
