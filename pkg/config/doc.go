// Package config handles settings management for wpg.
//
// Settings are layered with koanf, later layers winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $WPG_DIR/wpg.toml
//  3. WPG_* environment variables
//
// The resulting *Settings implements types.Settings and is passed
// explicitly to every component that needs an option.
package config
