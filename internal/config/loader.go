// Package config loads gostratus configuration from file, environment,
// and defaults.
//
// Precedence (highest wins): environment variables (GOSTRATUS_*), then a
// gostratus.yaml config file, then built-in defaults. Nested keys map to
// environment variables with underscores: server.port becomes
// GOSTRATUS_SERVER_PORT.
package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/3leaps/gostratus/pkg/wire"
)

// Config is the root configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Translate TranslateConfig `mapstructure:"translate"`
}

// ServerConfig configures the inspector HTTP server.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// RateLimit is the sustained request rate allowed per server, in
	// requests per second. Zero disables rate limiting.
	RateLimit float64 `mapstructure:"rate_limit"`

	// RateBurst is the burst size for the rate limiter.
	RateBurst int `mapstructure:"rate_burst"`
}

// LoggingConfig configures the service logger.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// TranslateConfig holds translation defaults.
type TranslateConfig struct {
	// Dialect is the default wire dialect when a request or command does
	// not specify one ("s3" or "azure").
	Dialect string `mapstructure:"dialect"`
}

// Load reads configuration from defaults, an optional gostratus.yaml, and
// the environment.
func Load(ctx context.Context) (*Config, error) {
	_ = ctx // reserved for future remote config sources

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("gostratus")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/gostratus")
	v.AddConfigPath("/etc/gostratus")

	v.SetEnvPrefix("GOSTRATUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// No config file is fine; defaults and env cover everything.
	}

	var cfg Config
	decodeHook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
	if err := v.Unmarshal(&cfg, viper.DecodeHook(decodeHook)); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.rate_limit", 50.0)
	v.SetDefault("server.rate_burst", 100)
	v.SetDefault("logging.level", "info")
	v.SetDefault("translate.dialect", "s3")
}

// Validate checks that loaded values are usable.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return &ValidationError{Field: "server.port", Message: fmt.Sprintf("invalid port %d", c.Server.Port)}
	}
	if c.Server.RateLimit < 0 {
		return &ValidationError{Field: "server.rate_limit", Message: "rate limit must not be negative"}
	}
	if _, err := wire.ParseDialect(c.Translate.Dialect); err != nil {
		return &ValidationError{Field: "translate.dialect", Message: err.Error()}
	}
	return nil
}

// ValidationError reports an invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "config: " + e.Field + ": " + e.Message
}
