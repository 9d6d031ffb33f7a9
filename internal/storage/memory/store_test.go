package memory_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/toon-tailor/internal/storage"
	"github.com/KirkDiggler/toon-tailor/internal/storage/memory"
	"github.com/KirkDiggler/toon-tailor/internal/storage/storagetest"
)

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &storagetest.StoreSuite{
		NewStore:   func(*testing.T) storage.Store { return memory.New() },
		Serialized: true,
	})
}

func TestGetReturnsCopy(t *testing.T) {
	ctx := t.Context()
	s := memory.New()
	value := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", value))
	value[0] = 'z'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	got[1] = 'z'

	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "abc", string(again))
}
