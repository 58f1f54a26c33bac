package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	viper "github.com/spf13/viper"
	gotenv "github.com/subosito/gotenv"
	yaml "gopkg.in/yaml.v3"
)

const (
	// ConfigDirName is the project-local configuration directory
	ConfigDirName = ".touchbridge"
	// ConfigFileName is the configuration file name inside ConfigDirName
	ConfigFileName = "config.yaml"
	// DefaultConfigPath is the default configuration file path
	DefaultConfigPath = ConfigDirName + "/" + ConfigFileName
	// EnvPrefix prefixes every environment variable override
	EnvPrefix = "TOUCHBRIDGE"
)

// Config represents the touchbridge configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Logging   LoggingConfig   `yaml:"logging" mapstructure:"logging"`
	Gesture   GestureConfig   `yaml:"gesture" mapstructure:"gesture"`
	Transport TransportConfig `yaml:"transport" mapstructure:"transport"`
	Storage   StorageConfig   `yaml:"storage" mapstructure:"storage"`
}

// ServerConfig contains HTTP/WebSocket server settings
type ServerConfig struct {
	Host         string `yaml:"host" mapstructure:"host"`
	Port         int    `yaml:"port" mapstructure:"port"`
	ReadTimeout  int    `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout int    `yaml:"write_timeout" mapstructure:"write_timeout"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// GestureConfig contains gesture classification thresholds
type GestureConfig struct {
	HoldThresholdMs   int64   `yaml:"hold_threshold_ms" mapstructure:"hold_threshold_ms"`
	MovementTolerance float64 `yaml:"movement_tolerance" mapstructure:"movement_tolerance"`
}

// TransportConfig contains command transport settings
type TransportConfig struct {
	Type            string          `yaml:"type" mapstructure:"type"`
	Appium          AppiumConfig    `yaml:"appium" mapstructure:"appium"`
	HoldDurationMs  int             `yaml:"hold_duration_ms" mapstructure:"hold_duration_ms"`
	SwipeDurationMs int             `yaml:"swipe_duration_ms" mapstructure:"swipe_duration_ms"`
	RateLimit       RateLimitConfig `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// AppiumConfig contains settings for the Appium W3C actions transport
type AppiumConfig struct {
	URL     string `yaml:"url" mapstructure:"url"`
	Timeout int    `yaml:"timeout" mapstructure:"timeout"`
}

// RateLimitConfig contains per-device dispatch rate limiting settings
type RateLimitConfig struct {
	Enabled             bool `yaml:"enabled" mapstructure:"enabled"`
	MaxActionsPerWindow int  `yaml:"max_actions_per_window" mapstructure:"max_actions_per_window"`
	WindowSeconds       int  `yaml:"window_seconds" mapstructure:"window_seconds"`
}

// StorageConfig contains device profile storage settings
type StorageConfig struct {
	Type     string         `yaml:"type" mapstructure:"type"`
	SQLite   SQLiteConfig   `yaml:"sqlite" mapstructure:"sqlite"`
	Postgres PostgresConfig `yaml:"postgres" mapstructure:"postgres"`
	Redis    RedisConfig    `yaml:"redis" mapstructure:"redis"`
}

// SQLiteConfig contains SQLite-specific configuration
type SQLiteConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// PostgresConfig contains Postgres-specific configuration
type PostgresConfig struct {
	Host     string `yaml:"host" mapstructure:"host"`
	Port     int    `yaml:"port" mapstructure:"port"`
	Database string `yaml:"database" mapstructure:"database"`
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
	SSLMode  string `yaml:"ssl_mode" mapstructure:"ssl_mode"`
}

// RedisConfig contains Redis-specific configuration
type RedisConfig struct {
	Host      string `yaml:"host" mapstructure:"host"`
	Port      int    `yaml:"port" mapstructure:"port"`
	Database  int    `yaml:"database" mapstructure:"database"`
	Username  string `yaml:"username,omitempty" mapstructure:"username"`
	Password  string `yaml:"password,omitempty" mapstructure:"password"`
	KeyPrefix string `yaml:"key_prefix" mapstructure:"key_prefix"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "127.0.0.1",
			Port:         8088,
			ReadTimeout:  15,
			WriteTimeout: 15,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Gesture: GestureConfig{
			HoldThresholdMs:   500,
			MovementTolerance: 0.1,
		},
		Transport: TransportConfig{
			Type: "appium",
			Appium: AppiumConfig{
				URL:     "http://127.0.0.1:4723",
				Timeout: 30,
			},
			HoldDurationMs:  1000,
			SwipeDurationMs: 500,
			RateLimit: RateLimitConfig{
				Enabled:             true,
				MaxActionsPerWindow: 120,
				WindowSeconds:       60,
			},
		},
		Storage: StorageConfig{
			Type: "sqlite",
			SQLite: SQLiteConfig{
				Path: ConfigDirName + "/devices.db",
			},
			Postgres: PostgresConfig{
				Host:     "localhost",
				Port:     5432,
				Database: "touchbridge",
				Username: "touchbridge",
				SSLMode:  "disable",
			},
			Redis: RedisConfig{
				Host:      "localhost",
				Port:      6379,
				KeyPrefix: "touchbridge:",
			},
		},
	}
}

// NewViper creates a viper instance seeded with the defaults and wired to
// TOUCHBRIDGE_* environment overrides
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, DefaultConfig())
	return v
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("server.host", cfg.Server.Host)
	v.SetDefault("server.port", cfg.Server.Port)
	v.SetDefault("server.read_timeout", cfg.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", cfg.Server.WriteTimeout)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("gesture.hold_threshold_ms", cfg.Gesture.HoldThresholdMs)
	v.SetDefault("gesture.movement_tolerance", cfg.Gesture.MovementTolerance)
	v.SetDefault("transport.type", cfg.Transport.Type)
	v.SetDefault("transport.appium.url", cfg.Transport.Appium.URL)
	v.SetDefault("transport.appium.timeout", cfg.Transport.Appium.Timeout)
	v.SetDefault("transport.hold_duration_ms", cfg.Transport.HoldDurationMs)
	v.SetDefault("transport.swipe_duration_ms", cfg.Transport.SwipeDurationMs)
	v.SetDefault("transport.rate_limit.enabled", cfg.Transport.RateLimit.Enabled)
	v.SetDefault("transport.rate_limit.max_actions_per_window", cfg.Transport.RateLimit.MaxActionsPerWindow)
	v.SetDefault("transport.rate_limit.window_seconds", cfg.Transport.RateLimit.WindowSeconds)
	v.SetDefault("storage.type", cfg.Storage.Type)
	v.SetDefault("storage.sqlite.path", cfg.Storage.SQLite.Path)
	v.SetDefault("storage.postgres.host", cfg.Storage.Postgres.Host)
	v.SetDefault("storage.postgres.port", cfg.Storage.Postgres.Port)
	v.SetDefault("storage.postgres.database", cfg.Storage.Postgres.Database)
	v.SetDefault("storage.postgres.username", cfg.Storage.Postgres.Username)
	v.SetDefault("storage.postgres.password", cfg.Storage.Postgres.Password)
	v.SetDefault("storage.postgres.ssl_mode", cfg.Storage.Postgres.SSLMode)
	v.SetDefault("storage.redis.host", cfg.Storage.Redis.Host)
	v.SetDefault("storage.redis.port", cfg.Storage.Redis.Port)
	v.SetDefault("storage.redis.database", cfg.Storage.Redis.Database)
	v.SetDefault("storage.redis.username", cfg.Storage.Redis.Username)
	v.SetDefault("storage.redis.password", cfg.Storage.Redis.Password)
	v.SetDefault("storage.redis.key_prefix", cfg.Storage.Redis.KeyPrefix)
}

// LoadEnvFiles loads .env files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadEnvFiles(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := gotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}
	return nil
}

// Load reads the configuration file at path (if it exists), applies
// environment overrides and validates the result
func Load(v *viper.Viper, path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the services cannot run with
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Gesture.HoldThresholdMs <= 0 {
		errs = append(errs, fmt.Errorf("gesture.hold_threshold_ms must be positive, got %d", c.Gesture.HoldThresholdMs))
	}
	if c.Gesture.MovementTolerance <= 0 || c.Gesture.MovementTolerance >= 1 {
		errs = append(errs, fmt.Errorf("gesture.movement_tolerance must be between 0 and 1, got %g", c.Gesture.MovementTolerance))
	}

	switch c.Transport.Type {
	case "appium":
		if c.Transport.Appium.URL == "" {
			errs = append(errs, fmt.Errorf("transport.appium.url is required for the appium transport"))
		}
	case "log":
	default:
		errs = append(errs, fmt.Errorf("unsupported transport type %q", c.Transport.Type))
	}
	if c.Transport.HoldDurationMs < 0 || c.Transport.SwipeDurationMs < 0 {
		errs = append(errs, fmt.Errorf("transport durations must not be negative"))
	}
	if c.Transport.RateLimit.Enabled && (c.Transport.RateLimit.MaxActionsPerWindow <= 0 || c.Transport.RateLimit.WindowSeconds <= 0) {
		errs = append(errs, fmt.Errorf("transport.rate_limit needs positive max_actions_per_window and window_seconds"))
	}

	switch c.Storage.Type {
	case "memory", "sqlite", "postgres", "redis":
	default:
		errs = append(errs, fmt.Errorf("unsupported storage type %q", c.Storage.Type))
	}

	return errors.Join(errs...)
}

// Write marshals the configuration to path as YAML
func Write(cfg *Config, path string, indent int) error {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(indent)

	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to close YAML encoder: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
