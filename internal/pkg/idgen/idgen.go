// Package idgen provides ID generation utilities
package idgen

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/KirkDiggler/toon-tailor/internal/errors"
	"github.com/KirkDiggler/toon-tailor/internal/pkg/clock"
)

// Strategy names accepted by New
const (
	StrategyULID      = "ulid"
	StrategyUUID      = "uuid"
	StrategyTimestamp = "timestamp"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// New returns the generator for a strategy name
func New(strategy string, c clock.Clock) (Generator, error) {
	if c == nil {
		c = clock.New()
	}
	switch strategy {
	case StrategyULID, "":
		return NewULID(c), nil
	case StrategyUUID:
		return NewUUID(""), nil
	case StrategyTimestamp:
		return NewTimestamp(c), nil
	default:
		return nil, errors.InvalidArgumentf("unknown id strategy %q", strategy)
	}
}

// ULIDGenerator generates lexically sortable, time-derived IDs. IDs created
// within the same millisecond stay strictly increasing.
type ULIDGenerator struct {
	mu      sync.Mutex
	clock   clock.Clock
	entropy *ulid.MonotonicEntropy
}

// NewULID creates a ULID generator reading time from c
func NewULID(c clock.Clock) *ULIDGenerator {
	return &ULIDGenerator{
		clock:   c,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Generate creates a new ULID string
func (g *ULIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(g.clock.Now()), g.entropy)
	if err != nil {
		// Monotonic entropy only fails when 2^80 IDs land in one millisecond
		// or crypto/rand is broken
		panic(fmt.Sprintf("ulid generation failed: %v", err))
	}
	return id.String()
}

// TimestampGenerator generates decimal millisecond timestamps, the format the
// browser app used for its IDs. A collision within one millisecond bumps the
// value so IDs never repeat.
type TimestampGenerator struct {
	mu    sync.Mutex
	clock clock.Clock
	last  int64
}

// NewTimestamp creates a timestamp generator reading time from c
func NewTimestamp(c clock.Clock) *TimestampGenerator {
	return &TimestampGenerator{clock: c}
}

// Generate creates a new timestamp ID
func (g *TimestampGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.clock.Now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}

// SequentialGenerator generates sequential IDs for testing
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates a new sequential ID
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}

// UUIDGenerator generates UUIDs with optional prefix
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a new UUID generator with optional prefix
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	id := uuid.New().String()
	if g.prefix != "" {
		return fmt.Sprintf("%s_%s", g.prefix, id)
	}
	return id
}
