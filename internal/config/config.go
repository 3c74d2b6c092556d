package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kls-dev/kls/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config keys.
const (
	KeyColor     = "color"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// allowed lists the accepted values per key.
var allowed = map[string][]string{
	KeyColor:     {"auto", "always", "never"},
	KeyLogLevel:  {"debug", "info", "warn", "error"},
	KeyLogFormat: {"text", "logfmt", "json"},
}

// Keys returns the known config keys in display order.
func Keys() []string {
	return []string{KeyColor, KeyLogLevel, KeyLogFormat}
}

// CheckValue reports whether value is accepted for key.
func CheckValue(key, value string) error {
	values, ok := allowed[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	if !slices.Contains(values, value) {
		return fmt.Errorf("invalid value %q for %s (want one of: %s)", value, key, strings.Join(values, ", "))
	}
	return nil
}

// Dir returns the path to the config directory (~/.kls/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.kls/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyColor, "auto")
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyLogFormat, "text")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Color returns the configured color mode (auto, always or never).
func Color() string { return Get(KeyColor) }

// LogLevel returns the configured log level.
func LogLevel() string { return Get(KeyLogLevel) }

// LogFormat returns the configured log format.
func LogFormat() string { return Get(KeyLogFormat) }
