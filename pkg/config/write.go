package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/arthur-debert/wpg/pkg/errors"
	"github.com/arthur-debert/wpg/pkg/logging"
	"github.com/arthur-debert/wpg/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
)

// WriteDefault writes the embedded defaults to path unless a file is
// already there. It reports whether the file was written.
func WriteDefault(path string) (bool, error) {
	logger := logging.GetLogger("config")

	if _, err := os.Stat(path); err == nil {
		logger.Warn().Str("path", path).Msg("Config file already exists, skipping")
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", path)
	}
	if err := os.WriteFile(path, defaultConfig, 0644); err != nil {
		return false, errors.Wrapf(err, errors.ErrConfigWrite, "failed to write config to %s", path)
	}

	logger.Info().Str("path", path).Msg("Written config file")
	return true, nil
}

// Set stores key=value in the user file at path, creating it if needed.
// Booleans are stored as TOML booleans and the backends list is split on commas.
func Set(path, key, value string) error {
	values := map[string]interface{}{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &values); err != nil {
			return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
		}
	case os.IsNotExist(err):
	default:
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", path)
	}

	values[key] = typedValue(key, value)

	out, err := toml.Marshal(values)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigWrite, "failed to encode settings")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", path)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrConfigWrite, "failed to write %s", path)
	}

	logger := logging.GetLogger("config")
	logger.Info().Str("key", key).Str("value", value).Msg("Setting saved")
	return nil
}

// Encode renders cfg as TOML
func Encode(cfg *Config) ([]byte, error) {
	out, err := toml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigWrite, "failed to encode settings")
	}
	return out, nil
}

func typedValue(key, value string) interface{} {
	if key == types.SettingBackends {
		list := splitList(value)
		if list == nil {
			return []string{}
		}
		return list
	}
	if key == types.SettingBackend || key == types.SettingWalCommand {
		return value
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return value
}
