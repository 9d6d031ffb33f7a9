package character_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/toon-tailor/internal/catalog"
	"github.com/KirkDiggler/toon-tailor/internal/clients/generator"
	generatormock "github.com/KirkDiggler/toon-tailor/internal/clients/generator/mock"
	"github.com/KirkDiggler/toon-tailor/internal/engine"
	"github.com/KirkDiggler/toon-tailor/internal/entities"
	"github.com/KirkDiggler/toon-tailor/internal/errors"
	"github.com/KirkDiggler/toon-tailor/internal/orchestrators/character"
	"github.com/KirkDiggler/toon-tailor/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/toon-tailor/internal/repositories/character"
	characterrepomock "github.com/KirkDiggler/toon-tailor/internal/repositories/character/mock"
	charactersvc "github.com/KirkDiggler/toon-tailor/internal/services/character"
	"github.com/KirkDiggler/toon-tailor/internal/services/transfer"
	"github.com/KirkDiggler/toon-tailor/internal/storage"
	"github.com/KirkDiggler/toon-tailor/internal/testutils"
	"github.com/KirkDiggler/toon-tailor/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCharRepo  *characterrepomock.MockRepository
	mockGenerator *generatormock.MockClient
	roller        *testutils.FixedRoller
	orchestrator  *character.Orchestrator
	ctx           context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharRepo = characterrepomock.NewMockRepository(s.ctrl)
	s.mockGenerator = generatormock.NewMockClient(s.ctrl)
	s.roller = &testutils.FixedRoller{Faces: []int{4, 5, 6}}
	s.ctx = context.Background()

	eng, err := engine.New(&engine.Config{Catalog: catalog.Default(), DiceRoller: s.roller})
	s.Require().NoError(err)
	xfer, err := transfer.New(&transfer.Config{Engine: eng})
	s.Require().NoError(err)

	orchestrator, err := character.New(&character.Config{
		CharacterRepo: s.mockCharRepo,
		Engine:        eng,
		Transfer:      xfer,
		Generator:     s.mockGenerator,
		IDGenerator:   idgen.NewSequential("char"),
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewValidatesConfig() {
	_, err := character.New(&character.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "invalid config")

	_, err = character.New(nil)
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestGetCatalog() {
	out, err := s.orchestrator.GetCatalog(s.ctx, &charactersvc.GetCatalogInput{})
	s.Require().NoError(err)
	s.Contains(out.Catalog.Races, entities.RaceDwarf)
	s.Len(out.Catalog.Classes, 5)

	out.Catalog.Races[0] = "Gnome"
	again, err := s.orchestrator.GetCatalog(s.ctx, &charactersvc.GetCatalogInput{})
	s.Require().NoError(err)
	s.Equal(entities.RaceHuman, again.Catalog.Races[0])
}

func (s *OrchestratorTestSuite) TestNewCharacter() {
	s.Run("returned only", func() {
		out, err := s.orchestrator.NewCharacter(s.ctx, &charactersvc.NewCharacterInput{Name: "Ada"})
		s.Require().NoError(err)
		s.Equal("char_1", out.Character.ID)
		s.Equal("Ada", out.Character.Name)
		s.Equal(entities.RaceHuman, out.Character.Race)
		s.Equal(15, out.Character.Attributes[entities.AttributeStrength])
	})

	s.Run("saved", func() {
		saved := mocks.ExpectCharacterSave(s.ctx, s.mockCharRepo)
		out, err := s.orchestrator.NewCharacter(s.ctx, &charactersvc.NewCharacterInput{Save: true})
		s.Require().NoError(err)
		s.Equal("char_2", out.Character.ID)
		s.Equal("char_2", saved.ID)
	})

	s.Run("nil input", func() {
		_, err := s.orchestrator.NewCharacter(s.ctx, nil)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestGetCharacter() {
	c := testutils.NewTestDwarfCleric("42")
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, c)

	out, err := s.orchestrator.GetCharacter(s.ctx, &charactersvc.GetCharacterInput{CharacterID: "42"})
	s.Require().NoError(err)
	s.Equal(c, out.Character)
	s.Contains(out.Abilities.Class, "Heal")
	s.Contains(out.Abilities.Race, "Stonework")
}

func (s *OrchestratorTestSuite) TestGetCharacterErrors() {
	s.Run("empty id", func() {
		_, err := s.orchestrator.GetCharacter(s.ctx, &charactersvc.GetCharacterInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("not found", func() {
		s.mockCharRepo.EXPECT().
			Get(s.ctx, characterrepo.GetInput{ID: "missing"}).
			Return(nil, errors.NotFound("character with ID missing not found"))

		_, err := s.orchestrator.GetCharacter(s.ctx, &charactersvc.GetCharacterInput{CharacterID: "missing"})
		s.True(errors.IsNotFound(err))
		s.Equal("missing", errors.GetMeta(err)["character_id"])
	})
}

func (s *OrchestratorTestSuite) TestListCharacters() {
	chars := []*entities.Character{testutils.NewTestCharacter("1", "Ada"), testutils.NewTestCharacter("2", "Brin")}
	s.mockCharRepo.EXPECT().
		LoadAll(s.ctx, characterrepo.LoadAllInput{}).
		Return(&characterrepo.LoadAllOutput{Characters: chars}, nil)

	out, err := s.orchestrator.ListCharacters(s.ctx, &charactersvc.ListCharactersInput{})
	s.Require().NoError(err)
	s.Equal(chars, out.Characters)
}

func (s *OrchestratorTestSuite) TestSaveCharacter() {
	c := testutils.NewTestCharacter("1", "Ada")
	s.mockCharRepo.EXPECT().
		SaveOne(s.ctx, characterrepo.SaveOneInput{Character: c}).
		Return(&characterrepo.SaveOneOutput{Character: c, Created: false}, nil)

	out, err := s.orchestrator.SaveCharacter(s.ctx, &charactersvc.SaveCharacterInput{Character: c})
	s.Require().NoError(err)
	s.False(out.Created)

	_, err = s.orchestrator.SaveCharacter(s.ctx, &charactersvc.SaveCharacterInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSaveCharacterWriteFailure() {
	s.mockCharRepo.EXPECT().
		SaveOne(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("quota exceeded").WithReason(storage.ReasonWrite))

	_, err := s.orchestrator.SaveCharacter(s.ctx, &charactersvc.SaveCharacterInput{Character: testutils.NewTestCharacter("1", "Ada")})
	s.Require().Error(err)
	s.True(errors.HasReason(err, storage.ReasonWrite))
}

func (s *OrchestratorTestSuite) TestDeleteCharacter() {
	s.mockCharRepo.EXPECT().
		DeleteOne(s.ctx, characterrepo.DeleteOneInput{ID: "1"}).
		Return(&characterrepo.DeleteOneOutput{Deleted: true}, nil)

	out, err := s.orchestrator.DeleteCharacter(s.ctx, &charactersvc.DeleteCharacterInput{CharacterID: "1"})
	s.Require().NoError(err)
	s.True(out.Deleted)

	_, err = s.orchestrator.DeleteCharacter(s.ctx, &charactersvc.DeleteCharacterInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUpdateOrigin() {
	stored := testutils.NewTestCharacter("1", "Ada")
	stored.SelectedAbilities = []string{"Rage", "Versatility"}
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, stored)
	saved := mocks.ExpectCharacterSave(s.ctx, s.mockCharRepo)

	name := "Ada Stonefist"
	out, err := s.orchestrator.UpdateOrigin(s.ctx, &charactersvc.UpdateOriginInput{
		CharacterID: "1",
		Name:        &name,
		Race:        entities.RaceDwarf,
		Class:       entities.ClassCleric,
		Gender:      entities.GenderFemale,
	})
	s.Require().NoError(err)

	s.Equal(name, saved.Name)
	s.Equal(entities.RaceDwarf, saved.Race)
	s.Equal(entities.ClassCleric, saved.Class)
	s.Equal(entities.GenderFemale, saved.Gender)
	s.Equal(12, saved.Attributes[entities.AttributeStrength])
	s.Equal(17, saved.Attributes[entities.AttributeWisdom])
	s.Empty(saved.SelectedAbilities, "abilities the new class and race do not offer are dropped")
	s.Contains(out.Abilities.Class, "Heal")
	s.Equal("Ada", stored.Name, "stored copy untouched")
}

func (s *OrchestratorTestSuite) TestUpdateOriginRejectedChangeStoresNothing() {
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, testutils.NewTestCharacter("1", "Ada"))

	_, err := s.orchestrator.UpdateOrigin(s.ctx, &charactersvc.UpdateOriginInput{
		CharacterID: "1",
		Class:       entities.ClassMage,
		Race:        "Gnome",
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestUpdateAttribute() {
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, testutils.NewTestCharacter("1", "Ada"))
	saved := mocks.ExpectCharacterSave(s.ctx, s.mockCharRepo)

	out, err := s.orchestrator.UpdateAttribute(s.ctx, &charactersvc.UpdateAttributeInput{
		CharacterID: "1",
		Attribute:   entities.AttributeStrength,
		Base:        18,
	})
	s.Require().NoError(err)
	s.Equal(19, out.Character.Attributes[entities.AttributeStrength])
	s.Equal(19, saved.Attributes[entities.AttributeStrength])
}

func (s *OrchestratorTestSuite) TestUpdateAttributeOutOfRange() {
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, testutils.NewTestCharacter("1", "Ada"))

	_, err := s.orchestrator.UpdateAttribute(s.ctx, &charactersvc.UpdateAttributeInput{
		CharacterID: "1",
		Attribute:   entities.AttributeStrength,
		Base:        21,
	})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestRollAttributes() {
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, testutils.NewTestCharacter("1", "Ada"))
	saved := mocks.ExpectCharacterSave(s.ctx, s.mockCharRepo)

	out, err := s.orchestrator.RollAttributes(s.ctx, &charactersvc.RollAttributesInput{CharacterID: "1"})
	s.Require().NoError(err)
	s.Equal(15, out.Rolled[entities.AttributeCharisma])
	s.Equal(16, saved.Attributes[entities.AttributeCharisma])
}

func (s *OrchestratorTestSuite) TestRollAttributesDiceFailure() {
	s.roller.Err = errors.Internal("dice jammed")
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, testutils.NewTestCharacter("1", "Ada"))

	_, err := s.orchestrator.RollAttributes(s.ctx, &charactersvc.RollAttributesInput{CharacterID: "1"})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestUpdateAppearance() {
	s.Run("valid", func() {
		mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, testutils.NewTestCharacter("1", "Ada"))
		saved := mocks.ExpectCharacterSave(s.ctx, s.mockCharRepo)

		appearance := entities.Appearance{HairColor: "r_", EyeColor: "#00FF00", SkinTone: "#654321", Height: 160, Beard: true}
		_, err := s.orchestrator.UpdateAppearance(s.ctx, &charactersvc.UpdateAppearanceInput{CharacterID: "1", Appearance: appearance})
		s.Require().NoError(err)
		s.Equal(appearance, saved.Appearance)
	})

	s.Run("invalid eye colour", func() {
		mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, testutils.NewTestCharacter("1", "Ada"))

		_, err := s.orchestrator.UpdateAppearance(s.ctx, &charactersvc.UpdateAppearanceInput{
			CharacterID: "1",
			Appearance:  entities.Appearance{HairColor: "r_", EyeColor: "green", SkinTone: "#654321", Height: 160},
		})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestSetEquipment() {
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, testutils.NewTestCharacter("1", "Ada"))
	saved := mocks.ExpectCharacterSave(s.ctx, s.mockCharRepo)

	_, err := s.orchestrator.SetEquipment(s.ctx, &charactersvc.SetEquipmentInput{CharacterID: "1", Slot: entities.SlotHat, Key: "pirate"})
	s.Require().NoError(err)
	s.Equal("pirate", saved.Equipment.Hat)

	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, testutils.NewTestCharacter("1", "Ada"))
	_, err = s.orchestrator.SetEquipment(s.ctx, &charactersvc.SetEquipmentInput{CharacterID: "1", Slot: "cape", Key: "red"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestToggleAbility() {
	s.Run("select", func() {
		mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, testutils.NewTestCharacter("1", "Ada"))
		saved := mocks.ExpectCharacterSave(s.ctx, s.mockCharRepo)

		out, err := s.orchestrator.ToggleAbility(s.ctx, &charactersvc.ToggleAbilityInput{CharacterID: "1", Ability: "Rage"})
		s.Require().NoError(err)
		s.True(out.Selected)
		s.Equal([]string{"Rage"}, saved.SelectedAbilities)
	})

	s.Run("limit reached", func() {
		full := testutils.NewTestCharacter("1", "Ada")
		full.SelectedAbilities = []string{"Rage", "Heavy Strike", "Shield Wall", "Taunt"}
		mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, full)

		_, err := s.orchestrator.ToggleAbility(s.ctx, &charactersvc.ToggleAbilityInput{CharacterID: "1", Ability: "Versatility"})
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
		s.True(errors.HasReason(err, engine.ReasonAbilityLimit))
		s.Equal(engine.AbilityLimitMessage, errors.GetMessage(err))
	})
}

func (s *OrchestratorTestSuite) TestGenerateCharacter() {
	s.mockGenerator.EXPECT().
		Generate(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *generator.GenerateInput) (*generator.GenerateOutput, error) {
			s.Equal("a cheerful elf archer", input.Prompt)
			guide, err := json.Marshal(input.Context)
			s.Require().NoError(err)
			s.Contains(string(guide), `"Halfling"`)
			s.Contains(string(guide), `"pirate"`)
			return &generator.GenerateOutput{
				Data:  json.RawMessage(`{"id":"ai-7","name":"Lia","race":"Elf","class":"Ranger","mana":12}`),
				Model: generator.DefaultModel,
			}, nil
		})

	out, err := s.orchestrator.GenerateCharacter(s.ctx, &charactersvc.GenerateCharacterInput{Prompt: "a cheerful elf archer"})
	s.Require().NoError(err)
	s.Equal("char_1", out.Character.ID, "generated characters get a fresh id")
	s.Equal("Lia", out.Character.Name)
	s.Equal(entities.RaceElf, out.Character.Race)
	s.Equal(entities.ClassRanger, out.Character.Class)
	s.Equal(entities.GenderMale, out.Character.Gender, "missing fields keep defaults")
	s.Equal(entities.DefaultTop, out.Character.Equipment.Top)
	s.Equal(generator.DefaultModel, out.Model)
}

func (s *OrchestratorTestSuite) TestGenerateCharacterSaved() {
	mocks.ExpectGeneration(s.mockGenerator, `{"name":"Bob","attributes":null}`)
	saved := mocks.ExpectCharacterSave(s.ctx, s.mockCharRepo)

	out, err := s.orchestrator.GenerateCharacter(s.ctx, &charactersvc.GenerateCharacterInput{Prompt: "bob", Save: true})
	s.Require().NoError(err)
	s.Equal("Bob", saved.Name)
	s.Equal(15, saved.Attributes[entities.AttributeStrength], "null attributes fall back to derived defaults")
	s.Equal(saved.ID, out.Character.ID)
}

func (s *OrchestratorTestSuite) TestGenerateCharacterFailures() {
	s.Run("generator error passes through", func() {
		s.mockGenerator.EXPECT().
			Generate(s.ctx, gomock.Any()).
			Return(nil, errors.Unavailable(generator.MessageNoContent).WithReason(generator.ReasonNoContent))

		_, err := s.orchestrator.GenerateCharacter(s.ctx, &charactersvc.GenerateCharacterInput{Prompt: "x"})
		s.Require().Error(err)
		s.True(errors.HasReason(err, generator.ReasonNoContent))
	})

	s.Run("json that is not an object", func() {
		mocks.ExpectGeneration(s.mockGenerator, `["Bob"]`)

		_, err := s.orchestrator.GenerateCharacter(s.ctx, &charactersvc.GenerateCharacterInput{Prompt: "x"})
		s.Require().Error(err)
		s.True(errors.HasReason(err, generator.ReasonInvalidData))
		s.Equal(generator.MessageInvalidData, errors.GetMessage(err))
	})
}

func (s *OrchestratorTestSuite) TestImportCharacter() {
	s.Run("keeps file id", func() {
		data, err := json.Marshal(testutils.NewTestDwarfCleric("file-9"))
		s.Require().NoError(err)

		out, err := s.orchestrator.ImportCharacter(s.ctx, &charactersvc.ImportCharacterInput{Reader: strings.NewReader(string(data))})
		s.Require().NoError(err)
		s.Equal(testutils.NewTestDwarfCleric("file-9"), out.Character)
	})

	s.Run("assigns id and saves", func() {
		saved := mocks.ExpectCharacterSave(s.ctx, s.mockCharRepo)

		out, err := s.orchestrator.ImportCharacter(s.ctx, &charactersvc.ImportCharacterInput{
			Reader: strings.NewReader(`{"name":"Loose","sparkle":true}`),
			Mode:   "lenient",
			Save:   true,
		})
		s.Require().NoError(err)
		s.NotEmpty(out.Character.ID)
		s.Equal(out.Character.ID, saved.ID)
		s.Equal("Loose", saved.Name)
	})

	s.Run("unknown mode", func() {
		_, err := s.orchestrator.ImportCharacter(s.ctx, &charactersvc.ImportCharacterInput{Reader: strings.NewReader(`{}`), Mode: "sloppy"})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("parse error", func() {
		_, err := s.orchestrator.ImportCharacter(s.ctx, &charactersvc.ImportCharacterInput{Reader: strings.NewReader(`not json`)})
		s.Require().Error(err)
		s.True(errors.HasReason(err, transfer.ReasonParse))
		s.Equal(transfer.MessageParse, errors.GetMessage(err))
	})
}

func (s *OrchestratorTestSuite) TestExportCharacter() {
	mocks.ExpectCharacterGet(s.ctx, s.mockCharRepo, testutils.NewTestCharacter("1700000000000", "Ada"))

	out, err := s.orchestrator.ExportCharacter(s.ctx, &charactersvc.ExportCharacterInput{CharacterID: "1700000000000"})
	s.Require().NoError(err)
	s.Equal("Ada-1700000000000.json", out.Filename)
	s.Contains(string(out.Data), `"name": "Ada"`)
}
