package character_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/toon-tailor/internal/entities"
	"github.com/KirkDiggler/toon-tailor/internal/errors"
	"github.com/KirkDiggler/toon-tailor/internal/pkg/idgen"
	"github.com/KirkDiggler/toon-tailor/internal/repositories/character"
	"github.com/KirkDiggler/toon-tailor/internal/storage"
	"github.com/KirkDiggler/toon-tailor/internal/storage/memory"
	storagemock "github.com/KirkDiggler/toon-tailor/internal/storage/mock"
	"github.com/KirkDiggler/toon-tailor/internal/testutils"
)

type RepositoryTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memory.Store
	repo  character.Repository
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.New()

	repo, err := character.New(&character.Config{
		Store:       s.store,
		IDGenerator: idgen.NewSequential("char"),
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RepositoryTestSuite) seed(raw string) {
	s.Require().NoError(s.store.Set(s.ctx, character.DefaultKey, []byte(raw)))
}

func (s *RepositoryTestSuite) stored() []map[string]any {
	raw, err := s.store.Get(s.ctx, character.DefaultKey)
	s.Require().NoError(err)
	var out []map[string]any
	s.Require().NoError(json.Unmarshal(raw, &out))
	return out
}

func (s *RepositoryTestSuite) TestNewValidatesConfig() {
	_, err := character.New(nil)
	s.Error(err)

	_, err = character.New(&character.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Store")
	s.Contains(err.Error(), "IDGenerator")
}

func (s *RepositoryTestSuite) TestLoadAll() {
	s.Run("absent key", func() {
		out, err := s.repo.LoadAll(s.ctx, character.LoadAllInput{})
		s.Require().NoError(err)
		s.NotNil(out.Characters)
		s.Empty(out.Characters)
	})

	s.Run("unparseable data", func() {
		s.seed("{not json")
		out, err := s.repo.LoadAll(s.ctx, character.LoadAllInput{})
		s.Require().NoError(err)
		s.Empty(out.Characters)
	})

	s.Run("stored order", func() {
		s.seed(`[{"id":"b","name":"Bree"},null,{"id":"a","name":"Arlo"}]`)
		out, err := s.repo.LoadAll(s.ctx, character.LoadAllInput{})
		s.Require().NoError(err)
		s.Require().Len(out.Characters, 2)
		s.Equal("b", out.Characters[0].ID)
		s.Equal("Arlo", out.Characters[1].Name)
	})

	s.Run("canceled context", func() {
		ctx, cancel := context.WithCancel(s.ctx)
		cancel()
		_, err := s.repo.LoadAll(ctx, character.LoadAllInput{})
		s.True(errors.IsCanceled(err))
	})
}

func (s *RepositoryTestSuite) TestSaveAllThenLoadAll() {
	chars := []*entities.Character{
		testutils.NewTestCharacter("1", "Ada"),
		testutils.NewTestCharacter("2", "Brin"),
	}
	_, err := s.repo.SaveAll(s.ctx, character.SaveAllInput{Characters: chars})
	s.Require().NoError(err)

	out, err := s.repo.LoadAll(s.ctx, character.LoadAllInput{})
	s.Require().NoError(err)
	s.Equal(chars, out.Characters)
}

func (s *RepositoryTestSuite) TestSaveAllNilWritesEmptyArray() {
	_, err := s.repo.SaveAll(s.ctx, character.SaveAllInput{})
	s.Require().NoError(err)

	raw, err := s.store.Get(s.ctx, character.DefaultKey)
	s.Require().NoError(err)
	s.Equal("[]", string(raw))
}

func (s *RepositoryTestSuite) TestSaveOne() {
	s.Run("appends new character", func() {
		out, err := s.repo.SaveOne(s.ctx, character.SaveOneInput{Character: testutils.NewTestCharacter("1", "Ada")})
		s.Require().NoError(err)
		s.True(out.Created)
		s.Len(s.stored(), 1)
	})

	s.Run("replaces by id without changing length", func() {
		updated := testutils.NewTestCharacter("1", "Ada the Bold")
		out, err := s.repo.SaveOne(s.ctx, character.SaveOneInput{Character: updated})
		s.Require().NoError(err)
		s.False(out.Created)

		stored := s.stored()
		s.Require().Len(stored, 1)
		s.Equal("Ada the Bold", stored[0]["name"])
	})

	s.Run("assigns id when empty", func() {
		c := testutils.NewTestCharacter("", "Nameless")
		out, err := s.repo.SaveOne(s.ctx, character.SaveOneInput{Character: c})
		s.Require().NoError(err)
		s.True(out.Created)
		s.Equal("char_1", out.Character.ID)
		s.Empty(c.ID, "input is not mutated")
		s.Len(s.stored(), 2)
	})

	s.Run("nil character", func() {
		_, err := s.repo.SaveOne(s.ctx, character.SaveOneInput{})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RepositoryTestSuite) TestSaveOneRecoversFromCorruptData() {
	s.seed("garbage")

	_, err := s.repo.SaveOne(s.ctx, character.SaveOneInput{Character: testutils.NewTestCharacter("1", "Ada")})
	s.Require().NoError(err)

	stored := s.stored()
	s.Require().Len(stored, 1)
	s.Equal("1", stored[0]["id"])
}

func (s *RepositoryTestSuite) TestMistypedEntryDoesNotHideOthers() {
	s.seed(`[{"id":"a"},{"id":2},{"id":"c"}]`)

	out, err := s.repo.LoadAll(s.ctx, character.LoadAllInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Characters, 2)
	s.Equal("a", out.Characters[0].ID)
	s.Equal("c", out.Characters[1].ID)

	got, err := s.repo.Get(s.ctx, character.GetInput{ID: "c"})
	s.Require().NoError(err)
	s.Equal("c", got.Character.ID)
}

func (s *RepositoryTestSuite) TestSaveOneKeepsMistypedEntries() {
	s.seed(`[{"id":"a"},{"id":2},{"id":"c"}]`)

	_, err := s.repo.SaveOne(s.ctx, character.SaveOneInput{Character: testutils.NewTestCharacter("new", "Nia")})
	s.Require().NoError(err)

	stored := s.stored()
	s.Require().Len(stored, 4)
	s.Equal("a", stored[0]["id"])
	s.Equal(float64(2), stored[1]["id"], "unreadable entries are carried through untouched")
	s.Equal("c", stored[2]["id"])
	s.Equal("new", stored[3]["id"])

	_, err = s.repo.SaveOne(s.ctx, character.SaveOneInput{Character: testutils.NewTestCharacter("c", "Cato")})
	s.Require().NoError(err)
	stored = s.stored()
	s.Require().Len(stored, 4)
	s.Equal("Cato", stored[2]["name"])
}

func (s *RepositoryTestSuite) TestDeleteOneKeepsMistypedEntries() {
	s.seed(`[{"id":"a"},{"id":"b","level":"high"},null,{"id":"c"}]`)

	out, err := s.repo.DeleteOne(s.ctx, character.DeleteOneInput{ID: "a"})
	s.Require().NoError(err)
	s.True(out.Deleted)

	stored := s.stored()
	s.Require().Len(stored, 3)
	s.Equal("b", stored[0]["id"])
	s.Nil(stored[1])
	s.Equal("c", stored[2]["id"])

	out, err = s.repo.DeleteOne(s.ctx, character.DeleteOneInput{ID: "b"})
	s.Require().NoError(err)
	s.True(out.Deleted, "an unreadable entry can still be deleted by id")
	s.Len(s.stored(), 2)
}

func (s *RepositoryTestSuite) TestDeleteOne() {
	s.seed(`[{"id":"1"},{"id":"2"},{"id":"3"}]`)

	out, err := s.repo.DeleteOne(s.ctx, character.DeleteOneInput{ID: "2"})
	s.Require().NoError(err)
	s.True(out.Deleted)

	stored := s.stored()
	s.Require().Len(stored, 2)
	s.Equal("1", stored[0]["id"])
	s.Equal("3", stored[1]["id"])

	out, err = s.repo.DeleteOne(s.ctx, character.DeleteOneInput{ID: "missing"})
	s.Require().NoError(err)
	s.False(out.Deleted)
	s.Len(s.stored(), 2)

	_, err = s.repo.DeleteOne(s.ctx, character.DeleteOneInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestGet() {
	s.seed(`[{"id":"1","name":"Ada"}]`)

	out, err := s.repo.Get(s.ctx, character.GetInput{ID: "1"})
	s.Require().NoError(err)
	s.Equal("Ada", out.Character.Name)

	_, err = s.repo.Get(s.ctx, character.GetInput{ID: "2"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, character.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryTestSuite) TestConcurrentSaveOne() {
	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.repo.SaveOne(s.ctx, character.SaveOneInput{Character: testutils.NewTestCharacter("", "Twin")})
			s.NoError(err)
		}()
	}
	wg.Wait()

	s.Len(s.stored(), writers)
}

type RepositoryFailureTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockStore *storagemock.MockStore
	repo      character.Repository
	ctx       context.Context
}

func TestRepositoryFailureSuite(t *testing.T) {
	suite.Run(t, new(RepositoryFailureTestSuite))
}

func (s *RepositoryFailureTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockStore = storagemock.NewMockStore(s.ctrl)
	s.ctx = context.Background()

	repo, err := character.New(&character.Config{
		Store:       s.mockStore,
		IDGenerator: idgen.NewSequential(""),
		Key:         "custom-key",
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RepositoryFailureTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *RepositoryFailureTestSuite) TestLoadAllSwallowsReadFailure() {
	s.mockStore.EXPECT().
		Get(s.ctx, "custom-key").
		Return(nil, storage.ReadError(errors.Unavailable("connection refused"), "test"))

	out, err := s.repo.LoadAll(s.ctx, character.LoadAllInput{})
	s.Require().NoError(err)
	s.Empty(out.Characters)
}

func (s *RepositoryFailureTestSuite) TestSaveAllWriteFailure() {
	s.mockStore.EXPECT().
		Set(s.ctx, "custom-key", []byte("[]")).
		Return(storage.WriteError(errors.Unavailable("quota exceeded"), "test"))

	_, err := s.repo.SaveAll(s.ctx, character.SaveAllInput{Characters: []*entities.Character{}})
	s.Require().Error(err)
	s.True(errors.HasReason(err, storage.ReasonWrite))
}

func (s *RepositoryFailureTestSuite) TestSaveOneReadFailureAborts() {
	s.mockStore.EXPECT().
		Update(s.ctx, "custom-key", gomock.Any()).
		Return(storage.ReadError(errors.Unavailable("connection refused"), "test"))

	_, err := s.repo.SaveOne(s.ctx, character.SaveOneInput{Character: testutils.NewTestCharacter("1", "Ada")})
	s.Require().Error(err)
	s.True(errors.HasReason(err, storage.ReasonRead))
	s.True(errors.IsUnavailable(err))
}

func (s *RepositoryFailureTestSuite) TestDeleteOnePassesCurrentValue() {
	var written []byte
	s.mockStore.EXPECT().
		Update(s.ctx, "custom-key", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fn storage.UpdateFunc) error {
			next, err := fn([]byte(`[{"id":"1"},{"id":"2"}]`), true)
			written = next
			return err
		})

	out, err := s.repo.DeleteOne(s.ctx, character.DeleteOneInput{ID: "1"})
	s.Require().NoError(err)
	s.True(out.Deleted)

	var remaining []map[string]any
	s.Require().NoError(json.Unmarshal(written, &remaining))
	s.Require().Len(remaining, 1)
	s.Equal("2", remaining[0]["id"])
}

func (s *RepositoryFailureTestSuite) TestSaveOneAborted() {
	s.mockStore.EXPECT().
		Update(s.ctx, "custom-key", gomock.Any()).
		Return(errors.Aborted("character data changed during update").WithReason(storage.ReasonWrite))

	_, err := s.repo.SaveOne(s.ctx, character.SaveOneInput{Character: testutils.NewTestCharacter("1", "Ada")})
	s.True(errors.IsAborted(err))
}
