// Package config manages the user-level configuration file
// (~/.evergreen/config.yaml) through Viper, with EVERGREEN_* environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/evergreen-labs/evergreen/internal/branding"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config keys.
const (
	KeyTriviaAPIURL  = "trivia_api_url"
	KeyTriviaTimeout = "trivia_timeout"
	KeyOutputFormat  = "output_format"
)

// Defaults applied when neither the config file nor the environment sets a key.
const (
	DefaultTriviaAPIURL  = "https://opentdb.com/api.php"
	DefaultTriviaTimeout = 10 * time.Second
	DefaultOutputFormat  = "table"
)

// Dir returns the path to the Evergreen config directory (~/.evergreen/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.evergreen/config.yaml).
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

	viper.SetDefault(KeyTriviaAPIURL, DefaultTriviaAPIURL)
	viper.SetDefault(KeyTriviaTimeout, DefaultTriviaTimeout)
	viper.SetDefault(KeyOutputFormat, DefaultOutputFormat)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// TriviaAPIURL returns the configured trivia service endpoint.
func TriviaAPIURL() string {
	return viper.GetString(KeyTriviaAPIURL)
}

// TriviaTimeout returns the HTTP timeout for trivia fetches.
func TriviaTimeout() time.Duration {
	return viper.GetDuration(KeyTriviaTimeout)
}

// OutputFormat returns the preferred list output format ("table" or "json").
func OutputFormat() string {
	return viper.GetString(KeyOutputFormat)
}

// Set writes a config key-value pair and saves the config file. Only keys
// the user explicitly set are persisted; defaults stay out of the file so
// a later release can change them.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()

	settings := map[string]interface{}{}
	if data, err := os.ReadFile(configFile); err == nil {
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return fmt.Errorf("parsing config file %s: %w", configFile, err)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("reading config file %s: %w", configFile, err)
	}
	settings[key] = value

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(configFile, data, 0644); err != nil {
		return fmt.Errorf("writing config file %s: %w", configFile, err)
	}

	viper.Set(key, value)
	return nil
}
