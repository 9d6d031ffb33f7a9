// Package storagetest holds behaviour tests every storage.Store must pass
package storagetest

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/toon-tailor/internal/errors"
	"github.com/KirkDiggler/toon-tailor/internal/storage"
)

// StoreSuite runs against the store returned by NewStore before each test
type StoreSuite struct {
	suite.Suite
	NewStore func(t *testing.T) storage.Store

	// Serialized is true when concurrent Update calls queue instead of
	// failing with errors.Aborted
	Serialized bool

	Store storage.Store
	ctx   context.Context
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.Store = s.NewStore(s.T())
}

func (s *StoreSuite) TearDownTest() {
	s.NoError(s.Store.Close())
}

func (s *StoreSuite) TestGetMissing() {
	_, err := s.Store.Get(s.ctx, "missing")
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *StoreSuite) TestSetThenGet() {
	s.Require().NoError(s.Store.Set(s.ctx, "k", []byte(`[1,2]`)))
	got, err := s.Store.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal(`[1,2]`, string(got))

	s.Require().NoError(s.Store.Set(s.ctx, "k", []byte(`[]`)))
	got, err = s.Store.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal(`[]`, string(got))
}

func (s *StoreSuite) TestUpdateAbsentKey() {
	err := s.Store.Update(s.ctx, "k", func(current []byte, found bool) ([]byte, error) {
		s.False(found)
		s.Empty(current)
		return []byte("first"), nil
	})
	s.Require().NoError(err)

	got, err := s.Store.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal("first", string(got))
}

func (s *StoreSuite) TestUpdateSeesCurrentValue() {
	s.Require().NoError(s.Store.Set(s.ctx, "k", []byte("a")))

	err := s.Store.Update(s.ctx, "k", func(current []byte, found bool) ([]byte, error) {
		s.True(found)
		return append(current, 'b'), nil
	})
	s.Require().NoError(err)

	got, err := s.Store.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal("ab", string(got))
}

func (s *StoreSuite) TestUpdateErrorLeavesValue() {
	s.Require().NoError(s.Store.Set(s.ctx, "k", []byte("keep")))
	sentinel := errors.FailedPrecondition("stop")

	err := s.Store.Update(s.ctx, "k", func([]byte, bool) ([]byte, error) {
		return nil, sentinel
	})
	s.Equal(sentinel, err)

	got, err := s.Store.Get(s.ctx, "k")
	s.Require().NoError(err)
	s.Equal("keep", string(got))
}

func (s *StoreSuite) TestConcurrentUpdates() {
	s.Require().NoError(s.Store.Set(s.ctx, "n", []byte{}))

	const writers = 10
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.Store.Update(s.ctx, "n", func(current []byte, _ bool) ([]byte, error) {
				return append(current, 'x'), nil
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		s.False(s.Serialized, "serialized store failed: %v", err)
		s.True(errors.IsAborted(err), "unexpected error: %v", err)
	}

	got, err := s.Store.Get(s.ctx, "n")
	s.Require().NoError(err)
	s.Len(got, succeeded, "every successful update is applied exactly once")
	if s.Serialized {
		s.Equal(writers, succeeded)
	}
}

func (s *StoreSuite) TestCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	err := s.Store.Set(ctx, "k", []byte("v"))
	s.Require().Error(err)
	s.True(errors.HasReason(err, storage.ReasonWrite))
}
