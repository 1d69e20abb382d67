package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	OutputDir  string     `json:"output_dir" mapstructure:"output_dir"`
	LogLevel   string     `json:"log_level" mapstructure:"log_level"`
	Database   Database   `json:"database" mapstructure:"database"`
	QuickStart QuickStart `json:"quick_start" mapstructure:"quick_start"`
	Initializr Initializr `json:"initializr" mapstructure:"initializr"`
}

type Database struct {
	URLEnv string `json:"url_env" mapstructure:"url_env"`
}

type QuickStart struct {
	IDType string `json:"id_type" mapstructure:"id_type"`
}

type Initializr struct {
	BaseURL      string        `json:"base_url" mapstructure:"base_url"`
	BootVersion  string        `json:"boot_version" mapstructure:"boot_version"`
	Dependencies []string      `json:"dependencies" mapstructure:"dependencies"`
	Timeout      time.Duration `json:"timeout" mapstructure:"timeout"`
}

var defaultDependencies = []string{
	"webflux", "lombok", "devtools", "configuration-processor", "data-r2dbc", "postgresql",
}

func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Database.URLEnv == "" {
		c.Database.URLEnv = "DATABASE_URL"
	}
	if c.QuickStart.IDType == "" {
		c.QuickStart.IDType = "Integer"
	}
	if c.Initializr.BaseURL == "" {
		c.Initializr.BaseURL = "https://start.spring.io"
	}
	if c.Initializr.BootVersion == "" {
		c.Initializr.BootVersion = "2.7.1"
	}
	if len(c.Initializr.Dependencies) == 0 {
		c.Initializr.Dependencies = append([]string(nil), defaultDependencies...)
	}
	if c.Initializr.Timeout == 0 {
		c.Initializr.Timeout = 60 * time.Second
	}
}

func (c *Config) Validate() error {
	supportedLevels := []string{"debug", "info", "warn", "error"}
	supported := false
	for _, level := range supportedLevels {
		if strings.EqualFold(c.LogLevel, level) {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported log level: %s. Supported levels: %v", c.LogLevel, supportedLevels)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}

	if strings.TrimSpace(c.QuickStart.IDType) == "" {
		return fmt.Errorf("quick_start.id_type cannot be empty")
	}

	if c.Initializr.Timeout < 0 {
		return fmt.Errorf("initializr.timeout cannot be negative")
	}

	return nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}
