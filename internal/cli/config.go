package cli

import (
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/message"

	"github.com/mcoot/sugoroku/internal/config"
	"github.com/mcoot/sugoroku/internal/factory"
	"github.com/mcoot/sugoroku/internal/locale"
	redisstorage "github.com/mcoot/sugoroku/internal/storage/redis"
)

// Config holds CLI configuration. Flags win over the environment.
type Config struct {
	Locale      string
	LogLevel    string
	LogFormat   string
	Output      string
	StorageType string
	RedisURL    string
	HTTPPort    int
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		Output: OutputText,
	}
}

// applyEnv fills every setting not given on the command line from env
func (c *Config) applyEnv(env config.AppConfig) {
	if c.Locale == "" {
		c.Locale = env.Locale
	}
	if c.LogLevel == "" {
		c.LogLevel = env.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = env.LogFormat
	}
	if c.HTTPPort == 0 {
		c.HTTPPort = env.HTTPPort
	}
	c.StorageType = env.StorageType
	c.RedisURL = env.RedisURL
}

// Logger builds the logger for this invocation
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	return config.NewLogger(w, c.LogLevel, c.LogFormat)
}

// Printer returns a printer for the configured locale
func (c *Config) Printer() (*message.Printer, error) {
	tag, err := locale.Parse(c.Locale)
	if err != nil {
		return nil, err
	}
	return locale.NewPrinter(tag), nil
}

// FactoryConfig selects the results backend
func (c *Config) FactoryConfig(logger *slog.Logger) (factory.Config, error) {
	cfg := factory.Config{
		Logger:      logger,
		StorageType: c.StorageType,
	}
	if c.StorageType == factory.StorageTypeRedis {
		if c.RedisURL == "" {
			return factory.Config{}, fmt.Errorf("REDIS_URL required when STORAGE_TYPE=redis")
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		cfg.RedisConfig = &redisCfg
	}
	return cfg, nil
}
