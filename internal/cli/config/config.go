package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the annodex tool configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Output OutputConfig `mapstructure:"output"`
}

// ServerConfig represents introspection server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// OutputConfig represents CLI output configuration
type OutputConfig struct {
	NoColor bool `mapstructure:"no_color"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load loads the configuration from annodex.yml or annodex.yaml
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 7380)
	v.SetDefault("output.no_color", false)

	// Set config name and paths
	v.SetConfigName("annodex")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Enable environment variable support
	v.SetEnvPrefix("annodex")
	v.AutomaticEnv()

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}
	if cfg.Server.Host == "" {
		return fmt.Errorf("server host must not be empty")
	}
	return nil
}
