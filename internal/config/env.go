package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Log formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// AppConfig holds settings read from the environment
type AppConfig struct {
	Locale      string `env:"SUGOROKU_LOCALE"`
	LogLevel    string `env:"SUGOROKU_LOG_LEVEL" envDefault:"warn"`
	LogFormat   string `env:"SUGOROKU_LOG_FORMAT" envDefault:"json"`
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL"`
	HTTPPort    int    `env:"SUGOROKU_HTTP_PORT" envDefault:"8080"`
}

// LoadAppConfig parses the environment into an AppConfig
func LoadAppConfig() (AppConfig, error) {
	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ParseLogLevel maps debug, info, warn and error onto slog levels
func ParseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return level, nil
}

// NewLogger builds the application logger writing to w
func NewLogger(w io.Writer, levelName, format string) (*slog.Logger, error) {
	level, err := ParseLogLevel(levelName)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(format) {
	case "", LogFormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case LogFormatText:
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q: must be %q or %q", format, LogFormatJSON, LogFormatText)
	}
}
