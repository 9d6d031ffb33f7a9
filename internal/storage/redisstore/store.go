// Package redisstore implements storage.Store on Redis
package redisstore

import (
	"context"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/toon-tailor/internal/errors"
	redisclient "github.com/KirkDiggler/toon-tailor/internal/redis"
	"github.com/KirkDiggler/toon-tailor/internal/storage"
)

const backendName = "redis"

// Config contains configuration for the Redis store
type Config struct {
	Client redisclient.Client
	// Prefix is prepended to every key, for sharing a Redis database
	Prefix string
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// Store keeps each value under one Redis string key
type Store struct {
	client redisclient.Client
	prefix string
}

// New creates a Redis-backed store
func New(cfg *Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Store{client: cfg.Client, prefix: cfg.Prefix}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, storage.NotFound(key)
		}
		return nil, storage.ReadError(err, backendName)
	}
	return v, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return storage.WriteError(err, backendName)
	}
	return nil
}

// Update uses WATCH/MULTI. A concurrent write to key between the read and
// the EXEC returns errors.Aborted; the update is not retried.
func (s *Store) Update(ctx context.Context, key string, fn storage.UpdateFunc) error {
	fullKey := s.prefix + key

	var fnErr error
	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, fullKey).Bytes()
		found := true
		if err == redis.Nil {
			current, found = nil, false
		} else if err != nil {
			return storage.ReadError(err, backendName)
		}

		next, err := fn(current, found)
		if err != nil {
			fnErr = err
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, fullKey, next, 0)
			return nil
		})
		return err
	}

	err := s.client.Watch(ctx, txf, fullKey)
	switch {
	case err == nil:
		return nil
	case fnErr != nil:
		return fnErr
	case err == redis.TxFailedErr:
		return errors.Aborted("character data changed during update").
			WithReason(storage.ReasonWrite).
			WithCause(err)
	case errors.GetReason(err) == storage.ReasonRead:
		return err
	default:
		return storage.WriteError(err, backendName)
	}
}

// Close closes the underlying client
func (s *Store) Close() error {
	return s.client.Close()
}
