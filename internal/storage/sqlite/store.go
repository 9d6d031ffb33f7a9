// Package sqlite implements storage.Store on a local SQLite file
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/toon-tailor/internal/errors"
	"github.com/KirkDiggler/toon-tailor/internal/pkg/clock"
	"github.com/KirkDiggler/toon-tailor/internal/storage"
)

const backendName = "sqlite"

//go:embed schema.sql
var schema string

// Config contains configuration for the SQLite store
type Config struct {
	// Path is the database file; ":memory:" opens a private in-memory database
	Path  string
	Clock clock.Clock
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if strings.TrimSpace(cfg.Path) == "" {
		return errors.InvalidArgument("storage path is required")
	}
	return nil
}

// Store keeps values in a single kv table
type Store struct {
	db    *sql.DB
	clock clock.Clock
}

// Open opens the database and creates the schema if needed
func Open(ctx context.Context, cfg *Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dsn := cfg.Path
	if dsn != ":memory:" {
		dsn = filepath.Clean(dsn)
	}
	dsn += "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "open sqlite db")
	}
	// One connection serializes writers and keeps ":memory:" databases shared
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "ping sqlite db")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "create sqlite schema")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	return &Store{db: db, clock: c}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	return get(ctx, s.db, key)
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.put(ctx, s.db, key, value)
}

// Update runs fn inside an immediate transaction
func (s *Store) Update(ctx context.Context, key string, fn storage.UpdateFunc) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storage.ReadError(err, backendName)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := get(ctx, tx, key)
	found := true
	if errors.IsNotFound(err) {
		current, found = nil, false
	} else if err != nil {
		return err
	}

	next, err := fn(current, found)
	if err != nil {
		return err
	}

	if err := s.put(ctx, tx, key, next); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return storage.WriteError(err, backendName)
	}
	return nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func get(ctx context.Context, q querier, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.NotFound(key)
		}
		return nil, storage.ReadError(err, backendName)
	}
	return value, nil
}

func (s *Store) put(ctx context.Context, q querier, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := q.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, s.clock.Now().UnixMilli(),
	)
	if err != nil {
		return storage.WriteError(err, backendName)
	}
	return nil
}
