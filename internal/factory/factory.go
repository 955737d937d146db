package factory

import (
	"errors"
	"io"
	"log/slog"

	"golang.org/x/text/message"

	"github.com/mcoot/sugoroku/internal/dependencies/clock"
	"github.com/mcoot/sugoroku/internal/dependencies/random"
	"github.com/mcoot/sugoroku/internal/model"
	"github.com/mcoot/sugoroku/internal/services/board"
	"github.com/mcoot/sugoroku/internal/services/game"
	"github.com/mcoot/sugoroku/internal/services/results"
	"github.com/mcoot/sugoroku/internal/services/turn"
	"github.com/mcoot/sugoroku/internal/storage"
	"github.com/mcoot/sugoroku/internal/storage/memory"
	redisstorage "github.com/mcoot/sugoroku/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	ResultsService *results.Service
	Resolver       *turn.Resolver

	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the results backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), random.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		ResultsService: results.New(store, clk, logger),
		Resolver:       turn.New(logger),
		Logger:         logger,
	}
}

// NewGame starts a game on world whose finished result is archived
func (a *App) NewGame(world *board.World, roster *model.Roster, printer *message.Printer) (*game.Controller, error) {
	return game.NewController(world, roster, a.Resolver, a.ResultsService, printer, a.Clock, a.Random, a.Logger)
}

// Close releases the storage backend's connections
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
