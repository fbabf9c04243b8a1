package types

// Recognized settings keys
const (
	SettingBackend      = "backend"
	SettingSetWallpaper = "set_wallpaper"
	SettingLightTheme   = "light_theme"
	SettingWalCols16    = "wal_cols16"
	SettingBackends     = "backends"
	SettingWalCommand   = "wal_command"
)

// Defaults applied when a key is absent
const (
	DefaultBackend      = "wal"
	DefaultSetWallpaper = true
	DefaultLightTheme   = true
	DefaultWalCommand   = "wal"
)

// Backend returns the configured backend, falling back to DefaultBackend
func Backend(s Settings) string {
	if s == nil {
		return DefaultBackend
	}
	return s.String(SettingBackend, DefaultBackend)
}

// SettingKeys lists every recognized settings key
var SettingKeys = []string{
	SettingBackend,
	SettingSetWallpaper,
	SettingLightTheme,
	SettingWalCols16,
	SettingBackends,
	SettingWalCommand,
}

// IsSettingKey reports whether key is recognized
func IsSettingKey(key string) bool {
	for _, k := range SettingKeys {
		if k == key {
			return true
		}
	}
	return false
}
