package factory

import (
	"errors"
	"io"
	"log/slog"

	"batepapo/internal/dependencies/clock"
	"batepapo/internal/services/chat"
	"batepapo/internal/services/presence"
	"batepapo/internal/services/reaper"
	"batepapo/internal/storage"
	"batepapo/internal/storage/memory"
	redisstorage "batepapo/internal/storage/redis"
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
	Clock clock.Clock

	// Services
	PresenceService *presence.Service
	ChatService     *chat.Service
	ReaperService   *reaper.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// ReaperConfig holds expiry sweep settings (optional)
	// Zero fields fall back to reaper.DefaultConfig() values
	ReaperConfig reaper.Config
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

	clk := clock.New()

	return newWithDependencies(store, clk, cfg.ReaperConfig, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, reaperCfg reaper.Config, logger *slog.Logger) *App {
	presenceService := presence.New(store, clk, logger)
	chatService := chat.New(store, clk, logger)
	reaperService := reaper.New(store, clk, reaperCfg, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		PresenceService: presenceService,
		ChatService:     chatService,
		ReaperService:   reaperService,
	}
}
