package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultBaseURL is the hosted Airweave API.
const DefaultBaseURL = "https://api.airweave.ai"

// DefaultRateLimit caps outgoing API requests per second. Zero disables the
// client-side limiter.
const DefaultRateLimit = 10.0

// Environment variable names. These take precedence over the config file.
const (
	EnvAPIKey     = "AIRWEAVE_API_KEY"
	EnvCollection = "AIRWEAVE_COLLECTION"
	EnvBaseURL    = "AIRWEAVE_BASE_URL"
)

// Config holds the resolved CLI configuration. The API key is sourced from the
// environment only and is never written back to the config file.
type Config struct {
	BaseURL      string  `mapstructure:"base_url"`
	Collection   string  `mapstructure:"collection"`
	Organization string  `mapstructure:"organization"`
	OutputFormat string  `mapstructure:"output_format"`
	RateLimit    float64 `mapstructure:"rate_limit"`
	Verbose      bool    `mapstructure:"verbose"`

	APIKey string `mapstructure:"-"`
}

// Dir returns the airweave config directory, creating it if needed.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting user home directory: %w", err)
	}

	configDir := filepath.Join(home, ".airweave")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("error creating config directory: %w", err)
	}
	return configDir, nil
}

// Init loads the .env file (if present), binds environment variables, and
// reads or creates the config file at ~/.airweave/config.yaml.
func Init() error {
	// Best effort: a missing .env is not an error.
	_ = godotenv.Load()

	configDir, err := Dir()
	if err != nil {
		return err
	}

	configFile := filepath.Join(configDir, "config.yaml")

	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")

	// Set default values
	viper.SetDefault("base_url", DefaultBaseURL)
	viper.SetDefault("output_format", "table")
	viper.SetDefault("rate_limit", DefaultRateLimit)

	// Environment wins over the file.
	_ = viper.BindEnv("base_url", EnvBaseURL)
	_ = viper.BindEnv("collection", EnvCollection)

	if err := viper.ReadInConfig(); err != nil {
		// If config file doesn't exist, create it with defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
			if err := viper.WriteConfigAs(configFile); err != nil {
				return fmt.Errorf("error creating default config file: %w", err)
			}
		} else {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// Get returns the resolved configuration.
func Get() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	config.APIKey = os.Getenv(EnvAPIKey)
	return &config, nil
}

// Set writes a single key into the config file. The API key is rejected so it
// never lands on disk. A fresh viper instance reads the file so only values
// already persisted there plus the target key are written back; settings
// resolved from the environment or flags stay transient.
func Set(key, value string) error {
	if key == "api_key" {
		return fmt.Errorf("the API key is read from %s and is not stored in the config file", EnvAPIKey)
	}

	configDir, err := Dir()
	if err != nil {
		return err
	}
	configFile := filepath.Join(configDir, "config.yaml")

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.Set(key, value)
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	// Keep the in-process view in sync with the file.
	viper.Set(key, value)
	return nil
}
