package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	GCP    GCPConfig    `mapstructure:"gcp"`
	Model  ModelConfig  `mapstructure:"model"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host               string        `mapstructure:"host"`
	Port               int           `mapstructure:"port"`
	Mode               string        `mapstructure:"mode"`
	ReadTimeout        time.Duration `mapstructure:"read_timeout"`
	WriteTimeout       time.Duration `mapstructure:"write_timeout"`
	MaxRequestBodySize int           `mapstructure:"max_request_body_size"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level     string `mapstructure:"level"`
	Format    string `mapstructure:"format"`
	Output    string `mapstructure:"output"`
	FilePath  string `mapstructure:"file_path"`
	AddSource bool   `mapstructure:"add_source"`
}

// GCPConfig locates the external control planes: the Apigee organization
// and environment, the API Hub project/region, the marketplace API host
// serving test data, and the public site URL used in documentation links.
type GCPConfig struct {
	ProjectID    string `mapstructure:"project_id"`
	ApigeeEnv    string `mapstructure:"apigee_env"`
	APIHost      string `mapstructure:"api_host"`
	APIHubRegion string `mapstructure:"apihub_region"`
	SiteURL      string `mapstructure:"site_url"`
}

// ModelConfig configures the generative model used for payload and spec
// generation.
type ModelConfig struct {
	Name            string  `mapstructure:"name"`
	Location        string  `mapstructure:"location"`
	MaxOutputTokens int32   `mapstructure:"max_output_tokens"`
	Temperature     float32 `mapstructure:"temperature"`
	TopP            float32 `mapstructure:"top_p"`
}

// Load loads the configuration file.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	// Environment variables take precedence, e.g. MP_GCP_PROJECT_ID.
	v.SetEnvPrefix("MP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.max_request_body_size", 4)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("gcp.apihub_region", "europe-west1")
	v.SetDefault("model.name", "gemini-1.5-flash-002")
	v.SetDefault("model.location", "us-central1")
	v.SetDefault("model.max_output_tokens", 8192)
	v.SetDefault("model.temperature", 1.0)
	v.SetDefault("model.top_p", 0.95)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server mode: %s, must be 'debug' or 'release'", c.Server.Mode)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("invalid log format: %s, must be 'json' or 'text'", c.Log.Format)
	}

	if c.GCP.ProjectID == "" {
		return fmt.Errorf("gcp.project_id is required")
	}
	if c.GCP.ApigeeEnv == "" {
		return fmt.Errorf("gcp.apigee_env is required")
	}
	if c.GCP.APIHost == "" {
		return fmt.Errorf("gcp.api_host is required")
	}
	if c.GCP.SiteURL == "" {
		return fmt.Errorf("gcp.site_url is required")
	}

	if c.Model.Name == "" {
		return fmt.Errorf("model.name is required")
	}

	return nil
}

// GetServerAddr returns the server listen address.
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetReadTimeout returns the read timeout.
func (c *Config) GetReadTimeout() time.Duration {
	return c.Server.ReadTimeout
}

// GetWriteTimeout returns the write timeout.
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Server.WriteTimeout
}
