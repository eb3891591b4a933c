package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration.
type Config struct {
	Storage struct {
		// Backend selects the key-value medium: memory, file or sqlite.
		Backend string `yaml:"backend" env:"STORAGE_BACKEND"`
		Path    string `yaml:"path" env:"STORAGE_PATH"`
	} `yaml:"storage"`

	Auth struct {
		AllowedDomains    []string `yaml:"allowed_domains" env:"AUTH_ALLOWED_DOMAINS"`
		MinPasswordLength int      `yaml:"min_password_length" env:"AUTH_MIN_PASSWORD_LENGTH"`
	} `yaml:"auth"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// The file is optional; environment variables win over file values.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// setDefaults sets default values for the configuration.
func setDefaults(config *Config) {
	config.Storage.Backend = "file"
	config.Storage.Path = "uniconnect.json"

	config.Auth.AllowedDomains = []string{".edu", ".edu.in", ".ac.in"}
	config.Auth.MinPasswordLength = 6

	config.Logging.Level = "info"
	config.Logging.Format = "pretty"
}

// validateConfig ensures that the configuration is usable.
func validateConfig(config *Config) error {
	switch config.Storage.Backend {
	case "memory":
	case "file", "sqlite":
		if config.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for the %s backend", config.Storage.Backend)
		}
	default:
		return fmt.Errorf("unknown storage backend %q (expected memory, file or sqlite)", config.Storage.Backend)
	}

	if len(config.Auth.AllowedDomains) == 0 {
		return fmt.Errorf("auth.allowed_domains must not be empty")
	}
	if config.Auth.MinPasswordLength < 1 {
		return fmt.Errorf("auth.min_password_length must be positive")
	}
	return nil
}
