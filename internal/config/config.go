package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all tracker configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Client  ClientConfig  `yaml:"client"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string   `yaml:"addr"`
	ShutdownTimeout string   `yaml:"shutdown_timeout"`
	AllowedOrigins  []string `yaml:"allowed_origins"`
}

// StorageConfig selects where participants are kept.
type StorageConfig struct {
	Driver string `yaml:"driver"` // json, sqlite
	Path   string `yaml:"path"`
	Watch  bool   `yaml:"watch"` // reload the json file on external edits
}

// ClientConfig configures the CLI and TUI when talking to a server.
type ClientConfig struct {
	ServerURL string `yaml:"server_url"`
	Timeout   string `yaml:"timeout"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
	File   string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":5000",
			ShutdownTimeout: "5s",
			AllowedOrigins:  []string{"*"},
		},
		Storage: StorageConfig{
			Driver: "json",
			Path:   "users.json",
			Watch:  true,
		},
		Client: ClientConfig{
			ServerURL: "http://localhost:5000",
			Timeout:   "10s",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if addr := os.Getenv("TRACKER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if path := os.Getenv("TRACKER_DATA"); path != "" {
		c.Storage.Path = path
	}
	if driver := os.Getenv("TRACKER_STORAGE"); driver != "" {
		c.Storage.Driver = strings.ToLower(driver)
	}
	if url := os.Getenv("TRACKER_SERVER_URL"); url != "" {
		c.Client.ServerURL = url
	}
	if level := os.Getenv("TRACKER_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
}

// GetShutdownTimeout returns the graceful shutdown timeout as a duration.
func (c *Config) GetShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

// GetClientTimeout returns the HTTP client timeout as a duration.
func (c *Config) GetClientTimeout() time.Duration {
	d, err := time.ParseDuration(c.Client.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

var (
	ValidDrivers    = []string{"json", "sqlite"}
	ValidLogLevels  = []string{"debug", "info", "warn", "error"}
	ValidLogFormats = []string{"json", "text"}
)

// Validate validates the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("server address not configured")
	}
	if strings.TrimSpace(c.Storage.Path) == "" {
		return fmt.Errorf("storage path not configured")
	}
	if !contains(ValidDrivers, c.Storage.Driver) {
		return fmt.Errorf("invalid storage driver: %s (valid: %v)", c.Storage.Driver, ValidDrivers)
	}
	if !contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	if !contains(ValidLogFormats, c.Logging.Format) {
		return fmt.Errorf("invalid log format: %s (valid: %v)", c.Logging.Format, ValidLogFormats)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
