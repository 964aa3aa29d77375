// Package config provides configuration management for atheme using Viper.
package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"

	"github.com/thoreinstein/atheme/internal/errors"
	"github.com/thoreinstein/atheme/internal/paths"
	"github.com/thoreinstein/atheme/pkg/fileutil"
)

// EnvPrefix is the prefix for environment overrides, e.g. ATHEME_CONFIG_FILE.
const EnvPrefix = "ATHEME"

// Setting keys.
const (
	KeyVersion    = "version"
	KeyConfigFile = "config_file"
)

// Keys lists every known setting in display order.
var Keys = []string{KeyVersion, KeyConfigFile}

// ErrUnknownKey indicates a setting name atheme does not recognize.
var ErrUnknownKey = errors.New("unknown configuration key")

// Config is atheme's own settings file.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// ConfigFile overrides Alacritty config discovery when non-empty.
	ConfigFile string `mapstructure:"config_file" yaml:"config_file"`
}

// Dir returns the directory searched for the settings file.
// ATHEME_CONFIG_DIR replaces the XDG location.
func Dir() string {
	if dir := os.Getenv(EnvPrefix + "_CONFIG_DIR"); dir != "" {
		return dir
	}
	return paths.SettingsDir()
}

// File returns the default settings file path inside Dir.
func File() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath(Dir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault(KeyVersion, 1)
	viper.SetDefault(KeyConfigFile, "")
}

// Load reads the settings file. An empty path searches the default
// locations and falls back to defaults when nothing is found; an explicit
// path must exist.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// no settings file yet; defaults apply
		case errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}

// Current returns the settings as Viper resolves them now, including
// environment overrides.
func Current() *Config {
	return &Config{
		Version:    viper.GetInt(KeyVersion),
		ConfigFile: viper.GetString(KeyConfigFile),
	}
}

// Set validates and stores one setting in memory. Call Save to persist it.
func Set(key, value string) error {
	switch key {
	case KeyVersion:
		cfg := Current()
		v, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, "version must be an integer, got %q", value)
		}
		cfg.Version = v
		if errs := Validate(cfg); len(errs) > 0 {
			return errs[0]
		}
		viper.Set(key, v)
	case KeyConfigFile:
		if err := validatePath(value); err != nil {
			return &PathError{Field: key, Path: value, Err: err}
		}
		viper.Set(key, value)
	default:
		return errors.Wrapf(ErrUnknownKey, "%q", key)
	}
	return nil
}

// Save writes the resolved settings to path, or to the default settings
// file when path is empty.
func Save(path string) error {
	if path == "" {
		path = viper.ConfigFileUsed()
	}
	if path == "" {
		path = File()
	}

	if err := paths.EnsureDir(filepath.Dir(path), paths.DefaultDirPerm); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	if err := fileutil.AtomicWriteYAML(path, Current()); err != nil {
		return errors.Wrap(err, "writing config file")
	}
	return nil
}
