package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jakechorley/skip-hire/pkg/core/model"
)

const (
	DefaultSkipAPIBaseURL = "https://app.wewantwaste.co.uk"
	DefaultPostcode       = "NR32"
	DefaultArea           = "Lowestoft"
	DefaultRequestTimeout = 10 * time.Second
	DefaultListenAddr     = ":8080"
	DefaultLogDir         = "logs"
)

// Config represents the application configuration
type Config struct {
	SkipAPIBaseURL string         `yaml:"skipApiBaseURL" validate:"required,url"`
	Location       model.Location `yaml:"location"`
	RequestTimeout string         `yaml:"requestTimeout,omitempty"`
	ListenAddr     string         `yaml:"listenAddr,omitempty" validate:"omitempty,hostname_port"`
	LogDir         string         `yaml:"logDir,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Default returns the configuration used when no overrides are given
func Default() *Config {
	return &Config{
		SkipAPIBaseURL: DefaultSkipAPIBaseURL,
		Location: model.Location{
			Postcode: DefaultPostcode,
			Area:     DefaultArea,
		},
		RequestTimeout: DefaultRequestTimeout.String(),
		ListenAddr:     DefaultListenAddr,
		LogDir:         DefaultLogDir,
	}
}

// Timeout returns the parsed request timeout, or the default when unset
func (c *Config) Timeout() time.Duration {
	if c.RequestTimeout == "" {
		return DefaultRequestTimeout
	}
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil {
		return DefaultRequestTimeout
	}
	return d
}

// LoadWithEnv loads skip_hire_config.<env>.yaml. When no file exists the
// defaults are used so the CLI works out of the box.
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(configFileName(env))
	if err != nil {
		return Default(), nil
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
// Fields missing from the file keep their default values.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration struct and the request timeout syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.RequestTimeout != "" {
		d, err := time.ParseDuration(cfg.RequestTimeout)
		if err != nil {
			return fmt.Errorf("invalid requestTimeout %q: %w", cfg.RequestTimeout, err)
		}
		if d < 0 {
			return fmt.Errorf("invalid requestTimeout %q: must not be negative", cfg.RequestTimeout)
		}
	}

	return nil
}

func configFileName(env string) string {
	if env == "" {
		return "skip_hire_config.yaml"
	}
	return fmt.Sprintf("skip_hire_config.%s.yaml", env)
}

// findConfigFile searches for the config file in current directory and home directory
func findConfigFile(configFileName string) (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or home directory", configFileName)
}
