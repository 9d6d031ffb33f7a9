package character_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/toon-tailor/internal/pkg/idgen"
	"github.com/KirkDiggler/toon-tailor/internal/repositories/character"
	"github.com/KirkDiggler/toon-tailor/internal/storage"
	"github.com/KirkDiggler/toon-tailor/internal/storage/redisstore"
	"github.com/KirkDiggler/toon-tailor/internal/storage/sqlite"
	"github.com/KirkDiggler/toon-tailor/internal/testutils"
)

// BackendIntegrationTestSuite runs the repository against real backends
type BackendIntegrationTestSuite struct {
	suite.Suite
	ctx      context.Context
	newStore func() storage.Store
	store    storage.Store
	repo     character.Repository
}

func TestRedisBackendIntegration(t *testing.T) {
	s := &BackendIntegrationTestSuite{}
	s.newStore = func() storage.Store {
		client, cleanup := testutils.CreateTestRedisClient(s.T())
		s.T().Cleanup(cleanup)
		store, err := redisstore.New(&redisstore.Config{Client: client})
		s.Require().NoError(err)
		return store
	}
	suite.Run(t, s)
}

func TestSQLiteBackendIntegration(t *testing.T) {
	s := &BackendIntegrationTestSuite{}
	s.newStore = func() storage.Store {
		store, err := sqlite.Open(context.Background(), &sqlite.Config{
			Path: filepath.Join(s.T().TempDir(), "characters.db"),
		})
		s.Require().NoError(err)
		return store
	}
	suite.Run(t, s)
}

func (s *BackendIntegrationTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newStore()

	ulids, err := idgen.New(idgen.StrategyULID, nil)
	s.Require().NoError(err)

	repo, err := character.New(&character.Config{Store: s.store, IDGenerator: ulids})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *BackendIntegrationTestSuite) TearDownTest() {
	_ = s.store.Close()
}

func (s *BackendIntegrationTestSuite) TestLifecycle() {
	first, err := s.repo.SaveOne(s.ctx, character.SaveOneInput{Character: testutils.NewTestCharacter("", "Ada")})
	s.Require().NoError(err)
	s.Len(first.Character.ID, 26, "ULID ids")

	second, err := s.repo.SaveOne(s.ctx, character.SaveOneInput{Character: testutils.NewTestDwarfCleric("")})
	s.Require().NoError(err)
	s.Greater(second.Character.ID, first.Character.ID)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: second.Character.ID})
	s.Require().NoError(err)
	s.Equal(second.Character, got.Character)

	_, err = s.repo.DeleteOne(s.ctx, character.DeleteOneInput{ID: first.Character.ID})
	s.Require().NoError(err)

	all, err := s.repo.LoadAll(s.ctx, character.LoadAllInput{})
	s.Require().NoError(err)
	s.Require().Len(all.Characters, 1)
	s.Equal(second.Character.ID, all.Characters[0].ID)

	raw, err := s.store.Get(s.ctx, character.DefaultKey)
	s.Require().NoError(err)
	s.Equal(byte('['), raw[0], "collection is stored as a bare JSON array")
}
