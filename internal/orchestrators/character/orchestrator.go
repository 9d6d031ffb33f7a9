// Package character implements the character orchestrator
package character

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/toon-tailor/internal/clients/generator"
	"github.com/KirkDiggler/toon-tailor/internal/engine"
	"github.com/KirkDiggler/toon-tailor/internal/entities"
	"github.com/KirkDiggler/toon-tailor/internal/errors"
	"github.com/KirkDiggler/toon-tailor/internal/pkg/idgen"
	characterrepo "github.com/KirkDiggler/toon-tailor/internal/repositories/character"
	"github.com/KirkDiggler/toon-tailor/internal/services/character"
	"github.com/KirkDiggler/toon-tailor/internal/services/transfer"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	Engine        engine.Engine
	Transfer      *transfer.Service
	Generator     generator.Client
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Transfer == nil {
		vb.RequiredField("Transfer")
	}
	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	engine        engine.Engine
	transfer      *transfer.Service
	generator     generator.Client
	idGen         idgen.Generator
}

// New creates a new character orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		characterRepo: cfg.CharacterRepo,
		engine:        cfg.Engine,
		transfer:      cfg.Transfer,
		generator:     cfg.Generator,
		idGen:         cfg.IDGenerator,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// GetCatalog returns a copy of the reference tables
func (o *Orchestrator) GetCatalog(_ context.Context, _ *character.GetCatalogInput) (*character.GetCatalogOutput, error) {
	data := o.engine.Catalog().Data()
	return &character.GetCatalogOutput{Catalog: &data}, nil
}

// NewCharacter creates a default character with a fresh ID
func (o *Orchestrator) NewCharacter(ctx context.Context, input *character.NewCharacterInput) (*character.NewCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c := o.engine.NewCharacter(o.idGen.Generate())
	c.Name = input.Name

	if input.Save {
		saved, err := o.save(ctx, c)
		if err != nil {
			return nil, err
		}
		c = saved
	}

	slog.DebugContext(ctx, "created character", "character_id", c.ID, "saved", input.Save)
	return &character.NewCharacterOutput{Character: c}, nil
}

// GetCharacter retrieves a stored character with the abilities it may select
func (o *Orchestrator) GetCharacter(ctx context.Context, input *character.GetCharacterInput) (*character.GetCharacterOutput, error) {
	c, err := o.load(ctx, input)
	if err != nil {
		return nil, err
	}

	return &character.GetCharacterOutput{
		Character: c,
		Abilities: o.engine.GetAbilities(c.Class, c.Race),
	}, nil
}

// ListCharacters returns the stored collection in stored order
func (o *Orchestrator) ListCharacters(ctx context.Context, _ *character.ListCharactersInput) (*character.ListCharactersOutput, error) {
	out, err := o.characterRepo.LoadAll(ctx, characterrepo.LoadAllInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}

	return &character.ListCharactersOutput{Characters: out.Characters}, nil
}

// SaveCharacter stores a character as given, replacing one with the same ID
func (o *Orchestrator) SaveCharacter(ctx context.Context, input *character.SaveCharacterInput) (*character.SaveCharacterOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	out, err := o.characterRepo.SaveOne(ctx, characterrepo.SaveOneInput{Character: input.Character})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save character")
	}

	return &character.SaveCharacterOutput{
		Character: out.Character,
		Created:   out.Created,
	}, nil
}

// DeleteCharacter removes a stored character; a missing ID is not an error
func (o *Orchestrator) DeleteCharacter(ctx context.Context, input *character.DeleteCharacterInput) (*character.DeleteCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.characterRepo.DeleteOne(ctx, characterrepo.DeleteOneInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete character").
			WithMeta("character_id", input.CharacterID)
	}

	return &character.DeleteCharacterOutput{Deleted: out.Deleted}, nil
}

// UpdateOrigin changes name, race, class and gender together; nothing is
// stored if any change is rejected
func (o *Orchestrator) UpdateOrigin(ctx context.Context, input *character.UpdateOriginInput) (*character.UpdateOriginOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.edit(ctx, input.CharacterID, func(c *entities.Character) error {
		if input.Name != nil {
			c.Name = *input.Name
		}
		if input.Race != "" && input.Race != c.Race {
			if err := o.engine.ChangeRace(c, input.Race); err != nil {
				return err
			}
		}
		if input.Class != "" && input.Class != c.Class {
			if err := o.engine.ChangeClass(c, input.Class); err != nil {
				return err
			}
		}
		if input.Gender != "" {
			return o.engine.ChangeGender(c, input.Gender)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &character.UpdateOriginOutput{
		Character: c,
		Abilities: o.engine.GetAbilities(c.Class, c.Race),
	}, nil
}

// UpdateAttribute sets one base attribute value
func (o *Orchestrator) UpdateAttribute(ctx context.Context, input *character.UpdateAttributeInput) (*character.UpdateAttributeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.edit(ctx, input.CharacterID, func(c *entities.Character) error {
		return o.engine.SetBaseAttribute(c, input.Attribute, input.Base)
	})
	if err != nil {
		return nil, err
	}

	return &character.UpdateAttributeOutput{Character: c}, nil
}

// RollAttributes rerolls every base attribute with 3d6
func (o *Orchestrator) RollAttributes(ctx context.Context, input *character.RollAttributesInput) (*character.RollAttributesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var rolled entities.Attributes
	c, err := o.edit(ctx, input.CharacterID, func(c *entities.Character) error {
		var err error
		rolled, err = o.engine.RollAttributes(c)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &character.RollAttributesOutput{Character: c, Rolled: rolled}, nil
}

// UpdateAppearance replaces the appearance after validating it
func (o *Orchestrator) UpdateAppearance(ctx context.Context, input *character.UpdateAppearanceInput) (*character.UpdateAppearanceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.edit(ctx, input.CharacterID, func(c *entities.Character) error {
		return o.engine.SetAppearance(c, input.Appearance)
	})
	if err != nil {
		return nil, err
	}

	return &character.UpdateAppearanceOutput{Character: c}, nil
}

// SetEquipment sets or clears one equipment slot
func (o *Orchestrator) SetEquipment(ctx context.Context, input *character.SetEquipmentInput) (*character.SetEquipmentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.edit(ctx, input.CharacterID, func(c *entities.Character) error {
		return o.engine.SetEquipment(c, input.Slot, input.Key)
	})
	if err != nil {
		return nil, err
	}

	return &character.SetEquipmentOutput{Character: c}, nil
}

// ToggleAbility selects or deselects one ability
func (o *Orchestrator) ToggleAbility(ctx context.Context, input *character.ToggleAbilityInput) (*character.ToggleAbilityOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var selected bool
	c, err := o.edit(ctx, input.CharacterID, func(c *entities.Character) error {
		var err error
		selected, err = o.engine.ToggleAbility(c, input.Ability)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &character.ToggleAbilityOutput{Character: c, Selected: selected}, nil
}

// GenerateCharacter asks the generator for a character and lays the result
// over a default character. The result always gets a fresh ID.
func (o *Orchestrator) GenerateCharacter(ctx context.Context, input *character.GenerateCharacterInput) (*character.GenerateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.generator.Generate(ctx, &generator.GenerateInput{
		Prompt:  input.Prompt,
		Context: o.generationContext(),
	})
	if err != nil {
		// the generator's message is the one shown to the user
		return nil, err
	}

	c := o.engine.NewCharacter("")
	if err := transfer.Overlay(c, out.Data, false); err != nil {
		slog.ErrorContext(ctx, "generated data is not a character", "model", out.Model, "error", err)
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, generator.MessageInvalidData).
			WithReason(generator.ReasonInvalidData)
	}
	c.ID = o.idGen.Generate()
	o.normalize(c)

	if input.Save {
		saved, err := o.save(ctx, c)
		if err != nil {
			return nil, err
		}
		c = saved
	}

	slog.DebugContext(ctx, "generated character", "character_id", c.ID, "model", out.Model, "saved", input.Save)
	return &character.GenerateCharacterOutput{Character: c, Model: out.Model}, nil
}

// ImportCharacter reads a character file. The character keeps the ID in the
// file and receives a fresh one when the file has none.
func (o *Orchestrator) ImportCharacter(ctx context.Context, input *character.ImportCharacterInput) (*character.ImportCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var mode transfer.Mode
	if input.Mode != "" {
		parsed, err := transfer.ParseMode(input.Mode)
		if err != nil {
			return nil, err
		}
		mode = parsed
	}

	out, err := o.transfer.Import(ctx, &transfer.ImportInput{Reader: input.Reader, Mode: mode})
	if err != nil {
		return nil, err
	}

	c := out.Character
	if c.ID == "" {
		c.ID = o.idGen.Generate()
	}
	o.normalize(c)

	if input.Save {
		saved, err := o.save(ctx, c)
		if err != nil {
			return nil, err
		}
		c = saved
	}

	slog.DebugContext(ctx, "imported character", "character_id", c.ID, "saved", input.Save)
	return &character.ImportCharacterOutput{Character: c}, nil
}

// ExportCharacter renders a stored character as a downloadable file
func (o *Orchestrator) ExportCharacter(ctx context.Context, input *character.ExportCharacterInput) (*character.ExportCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	c, err := o.load(ctx, &character.GetCharacterInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, err
	}

	out, err := o.transfer.Export(c)
	if err != nil {
		return nil, err
	}

	return &character.ExportCharacterOutput{Filename: out.Filename, Data: out.Data}, nil
}

func (o *Orchestrator) load(ctx context.Context, input *character.GetCharacterInput) (*entities.Character, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get character").
			WithMeta("character_id", input.CharacterID)
	}
	return out.Character, nil
}

func (o *Orchestrator) save(ctx context.Context, c *entities.Character) (*entities.Character, error) {
	out, err := o.characterRepo.SaveOne(ctx, characterrepo.SaveOneInput{Character: c})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save character").
			WithMeta("character_id", c.ID)
	}
	return out.Character, nil
}

// edit applies fn to a copy of a stored character and stores the result
func (o *Orchestrator) edit(ctx context.Context, id string, fn func(c *entities.Character) error) (*entities.Character, error) {
	current, err := o.load(ctx, &character.GetCharacterInput{CharacterID: id})
	if err != nil {
		return nil, err
	}

	c := current.Clone()
	o.normalize(c)
	if err := fn(c); err != nil {
		slog.DebugContext(ctx, "character edit rejected", "character_id", id, "error", err)
		return nil, err
	}

	return o.save(ctx, c)
}

// normalize fills the collections a lenient import or a sparse generated
// record may have left nil
func (o *Orchestrator) normalize(c *entities.Character) {
	if c.Attributes == nil {
		c.Attributes = o.engine.CalculateAttributes(c.Class, c.Race, nil)
	}
	if c.Abilities == nil {
		c.Abilities = []string{}
	}
	if c.SelectedAbilities == nil {
		c.SelectedAbilities = []string{}
	}
	if c.Equipment.Items == nil {
		c.Equipment.Items = []any{}
	}
}

// generationContext lists the options a generated character should use
func (o *Orchestrator) generationContext() map[string]any {
	cat := o.engine.Catalog()

	hairColors := make([]string, 0, len(cat.HairColors()))
	for _, hc := range cat.HairColors() {
		hairColors = append(hairColors, hc.Code)
	}
	equipment := make(map[string][]string, len(entities.Slots))
	for _, slot := range entities.Slots {
		options := cat.Equipment(slot)
		keys := make([]string, 0, len(options))
		for _, opt := range options {
			keys = append(keys, opt.Key)
		}
		equipment[slot] = keys
	}

	return map[string]any{
		"races":      cat.Races(),
		"classes":    cat.Classes(),
		"genders":    cat.Genders(),
		"attributes": cat.AttributeNames(),
		"hairColors": hairColors,
		"equipment":  equipment,
	}
}
