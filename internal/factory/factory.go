package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/letterswap/internal/dependencies/clock"
	"github.com/mcoot/letterswap/internal/dependencies/random"
	"github.com/mcoot/letterswap/internal/model"
	"github.com/mcoot/letterswap/internal/services/dictionary"
	"github.com/mcoot/letterswap/internal/services/game"
	"github.com/mcoot/letterswap/internal/storage"
	"github.com/mcoot/letterswap/internal/storage/memory"
	redisstorage "github.com/mcoot/letterswap/internal/storage/redis"
	sqlitestorage "github.com/mcoot/letterswap/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	DictionaryService *dictionary.Service
	GameController    *game.Controller

	Logger *slog.Logger
	closer io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is a word frequency file loaded by LoadDictionary (optional)
	DictionaryPath string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// Seed makes every shuffle and bot decision reproducible (optional)
	Seed *uint64
	// GameConfig holds the match rules
	// If zero value, defaults to game.DefaultConfig()
	GameConfig game.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	var closer io.Closer
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
		closer = redisStore
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlitestorage.New(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		store = sqliteStore
		closer = sqliteStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'sqlite'")
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.Seed != nil {
		rnd = random.NewSeeded(*cfg.Seed)
	}

	gameCfg := cfg.GameConfig
	if gameCfg.HandSize == 0 {
		gameCfg = game.DefaultConfig()
	}

	app := newWithDependencies(store, clk, rnd, gameCfg, logger)
	app.closer = closer
	return app, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, gameCfg game.Config, logger *slog.Logger) *App {
	dictService := dictionary.New(store, logger)
	gameController := game.NewController(dictService, store, clk, rnd, gameCfg, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		DictionaryService: dictService,
		GameController:    gameController,
		Logger:            logger,
	}
}

// LoadDictionary loads the word list from path when given. Otherwise it uses
// the table in storage, falling back to the bundled list when storage has none.
func (a *App) LoadDictionary(ctx context.Context, path string) error {
	if path != "" {
		return a.DictionaryService.LoadFromFile(ctx, path)
	}

	err := a.DictionaryService.LoadFromStorage(ctx)
	if errors.Is(err, model.ErrDictionaryNotLoaded) {
		a.Logger.Info("no dictionary in storage, using bundled word list")
		return a.DictionaryService.LoadDefault()
	}
	return err
}

// Close releases the storage connection, if any
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
