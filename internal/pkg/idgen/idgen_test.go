package idgen_test

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/toon-tailor/internal/errors"
	"github.com/KirkDiggler/toon-tailor/internal/pkg/clock"
	"github.com/KirkDiggler/toon-tailor/internal/pkg/idgen"
)

func TestULIDGeneratorIsMonotonicWithinMillisecond(t *testing.T) {
	c := clock.NewFixed(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	gen := idgen.NewULID(c)

	prev := gen.Generate()
	for i := 0; i < 50; i++ {
		next := gen.Generate()
		assert.Greater(t, next, prev)
		prev = next
	}

	parsed, err := ulid.Parse(prev)
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(c.Now()), parsed.Time())
}

func TestTimestampGenerator(t *testing.T) {
	c := clock.NewFixed(time.UnixMilli(1700000000000))
	gen := idgen.NewTimestamp(c)

	assert.Equal(t, "1700000000000", gen.Generate())
	assert.Equal(t, "1700000000001", gen.Generate(), "same millisecond bumps")

	c.Advance(10 * time.Millisecond)
	assert.Equal(t, "1700000000010", gen.Generate())
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("char")
	assert.Equal(t, "char_1", gen.Generate())
	assert.Equal(t, "char_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	id := idgen.NewUUID("char").Generate()
	assert.Regexp(t, `^char_[0-9a-f-]{36}$`, id)
}

func TestNew(t *testing.T) {
	for _, strategy := range []string{"", idgen.StrategyULID, idgen.StrategyUUID, idgen.StrategyTimestamp} {
		gen, err := idgen.New(strategy, nil)
		require.NoError(t, err, strategy)
		assert.NotEmpty(t, gen.Generate(), strategy)
	}

	_, err := idgen.New("snowflake", nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
