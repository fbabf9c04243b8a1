package config

import (
	"os"
	"strings"

	"github.com/arthur-debert/wpg/pkg/errors"
	"github.com/arthur-debert/wpg/pkg/logging"
	"github.com/arthur-debert/wpg/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment overrides
const EnvPrefix = "WPG_"

// Config is the typed snapshot of all recognized settings
type Config struct {
	Backend      string   `koanf:"backend" toml:"backend"`
	SetWallpaper bool     `koanf:"set_wallpaper" toml:"set_wallpaper"`
	LightTheme   bool     `koanf:"light_theme" toml:"light_theme"`
	WalCols16    bool     `koanf:"wal_cols16" toml:"wal_cols16"`
	WalCommand   string   `koanf:"wal_command" toml:"wal_command"`
	Backends     []string `koanf:"backends" toml:"backends"`
}

// Settings is a koanf-backed implementation of types.Settings
type Settings struct {
	k *koanf.Koanf
}

var _ types.Settings = (*Settings)(nil)

// Load builds settings from the embedded defaults, the user file at
// configFile (skipped when absent) and WPG_* environment variables.
func Load(configFile string) (*Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", configFile)
			}
			logger.Debug().Str("path", configFile).Msg("Loaded user settings")
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat %s", configFile)
		}
	}

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	return &Settings{k: k}, nil
}

// NewFromMap builds settings from the embedded defaults overlaid with values.
// It is used by tests and by callers that already hold resolved options.
func NewFromMap(values map[string]interface{}) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}
	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load values")
	}

	return &Settings{k: k}, nil
}

// envValue maps WPG_LIGHT_THEME=false to light_theme=false
func envValue(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if key == types.SettingBackends {
		return key, splitList(value)
	}
	return key, value
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns the string at key, or def when unset
func (s *Settings) String(key, def string) string {
	if !s.k.Exists(key) {
		return def
	}
	return s.k.String(key)
}

// Bool returns the bool at key, or def when unset
func (s *Settings) Bool(key string, def bool) bool {
	if !s.k.Exists(key) {
		return def
	}
	return s.k.Bool(key)
}

// Strings returns the list at key, or def when unset or empty
func (s *Settings) Strings(key string, def []string) []string {
	if !s.k.Exists(key) {
		return def
	}
	if v := s.k.Strings(key); len(v) > 0 {
		return v
	}
	return def
}

// Config decodes all settings into a Config
func (s *Settings) Config() (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := s.k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal settings")
	}
	return &cfg, nil
}
