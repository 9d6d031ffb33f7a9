// Package backend opens the storage.Store selected by configuration
package backend

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/toon-tailor/internal/errors"
	"github.com/KirkDiggler/toon-tailor/internal/pkg/clock"
	"github.com/KirkDiggler/toon-tailor/internal/redis"
	"github.com/KirkDiggler/toon-tailor/internal/storage"
	"github.com/KirkDiggler/toon-tailor/internal/storage/memory"
	"github.com/KirkDiggler/toon-tailor/internal/storage/redisstore"
	"github.com/KirkDiggler/toon-tailor/internal/storage/sqlite"
)

// Backend names
const (
	SQLite = "sqlite"
	Redis  = "redis"
	Memory = "memory"
)

// Names lists the accepted backend names
var Names = []string{SQLite, Redis, Memory}

// Config selects and configures a backend
type Config struct {
	Backend     string
	SQLitePath  string
	RedisAddr   string
	RedisPrefix string
	Clock       clock.Clock
}

// Validate checks that the selected backend has what it needs
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("backend", cfg.Backend, Names, vb)
	switch cfg.Backend {
	case SQLite:
		errors.ValidateRequired("sqlitePath", cfg.SQLitePath, vb)
	case Redis:
		errors.ValidateRequired("redisAddr", cfg.RedisAddr, vb)
	}
	return vb.Build()
}

// Open returns the configured store. Redis reachability is checked up front.
func Open(ctx context.Context, cfg *Config) (storage.Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case SQLite:
		slog.DebugContext(ctx, "opening sqlite store", "path", cfg.SQLitePath)
		store, err := sqlite.Open(ctx, &sqlite.Config{Path: cfg.SQLitePath, Clock: cfg.Clock})
		if err != nil {
			return nil, err
		}
		return store, nil
	case Redis:
		slog.DebugContext(ctx, "opening redis store", "addr", cfg.RedisAddr)
		client, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, err
		}
		if err := redis.Ping(ctx, client); err != nil {
			_ = client.Close()
			return nil, err
		}
		store, err := redisstore.New(&redisstore.Config{Client: client, Prefix: cfg.RedisPrefix})
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		return store, nil
	default:
		slog.DebugContext(ctx, "opening in-memory store")
		return memory.New(), nil
	}
}
