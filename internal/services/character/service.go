// Package character defines the interface for character operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/toon-tailor/internal/services/character Service

import (
	"context"
	"io"

	"github.com/KirkDiggler/toon-tailor/internal/catalog"
	"github.com/KirkDiggler/toon-tailor/internal/engine"
	"github.com/KirkDiggler/toon-tailor/internal/entities"
)

// Service defines the interface for character operations
type Service interface {
	// Reference data
	GetCatalog(ctx context.Context, input *GetCatalogInput) (*GetCatalogOutput, error)

	// Collection operations
	NewCharacter(ctx context.Context, input *NewCharacterInput) (*NewCharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	SaveCharacter(ctx context.Context, input *SaveCharacterInput) (*SaveCharacterOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error)

	// Edits to a stored character. Each loads the character, applies the
	// change and stores the result; concurrent edits of one character are
	// last-writer-wins.
	UpdateOrigin(ctx context.Context, input *UpdateOriginInput) (*UpdateOriginOutput, error)
	UpdateAttribute(ctx context.Context, input *UpdateAttributeInput) (*UpdateAttributeOutput, error)
	RollAttributes(ctx context.Context, input *RollAttributesInput) (*RollAttributesOutput, error)
	UpdateAppearance(ctx context.Context, input *UpdateAppearanceInput) (*UpdateAppearanceOutput, error)
	SetEquipment(ctx context.Context, input *SetEquipmentInput) (*SetEquipmentOutput, error)
	ToggleAbility(ctx context.Context, input *ToggleAbilityInput) (*ToggleAbilityOutput, error)

	// Characters from outside the editor
	GenerateCharacter(ctx context.Context, input *GenerateCharacterInput) (*GenerateCharacterOutput, error)
	ImportCharacter(ctx context.Context, input *ImportCharacterInput) (*ImportCharacterOutput, error)
	ExportCharacter(ctx context.Context, input *ExportCharacterInput) (*ExportCharacterOutput, error)
}

// GetCatalogInput defines the request for the catalog
type GetCatalogInput struct{}

// GetCatalogOutput defines the response for the catalog
type GetCatalogOutput struct {
	Catalog *catalog.Data
}

// NewCharacterInput defines the request for a default character
type NewCharacterInput struct {
	Name string
	// Save stores the character; otherwise it is only returned
	Save bool
}

// NewCharacterOutput defines the response for a default character
type NewCharacterOutput struct {
	Character *entities.Character
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *entities.Character
	Abilities *engine.Abilities
}

// ListCharactersInput defines the request for listing characters
type ListCharactersInput struct{}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*entities.Character
}

// SaveCharacterInput defines the request for saving a character
type SaveCharacterInput struct {
	Character *entities.Character
}

// SaveCharacterOutput defines the response for saving a character
type SaveCharacterOutput struct {
	Character *entities.Character
	Created   bool
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	CharacterID string
}

// DeleteCharacterOutput defines the response for deleting a character
type DeleteCharacterOutput struct {
	Deleted bool
}

// UpdateOriginInput changes identity fields. Empty strings and a nil Name
// leave the field unchanged.
type UpdateOriginInput struct {
	CharacterID string
	Name        *string
	Race        string
	Class       string
	Gender      string
}

// UpdateOriginOutput defines the response for updating origin fields
type UpdateOriginOutput struct {
	Character *entities.Character
	Abilities *engine.Abilities
}

// UpdateAttributeInput sets the base (pre-bonus) value of one attribute
type UpdateAttributeInput struct {
	CharacterID string
	Attribute   string
	Base        int
}

// UpdateAttributeOutput defines the response for updating an attribute
type UpdateAttributeOutput struct {
	Character *entities.Character
}

// RollAttributesInput defines the request for rolling attributes
type RollAttributesInput struct {
	CharacterID string
}

// RollAttributesOutput defines the response for rolling attributes
type RollAttributesOutput struct {
	Character *entities.Character
	// Rolled holds the base values before race bonuses
	Rolled entities.Attributes
}

// UpdateAppearanceInput replaces the appearance
type UpdateAppearanceInput struct {
	CharacterID string
	Appearance  entities.Appearance
}

// UpdateAppearanceOutput defines the response for updating appearance
type UpdateAppearanceOutput struct {
	Character *entities.Character
}

// SetEquipmentInput sets one slot; an empty Key clears it
type SetEquipmentInput struct {
	CharacterID string
	Slot        string
	Key         string
}

// SetEquipmentOutput defines the response for setting equipment
type SetEquipmentOutput struct {
	Character *entities.Character
}

// ToggleAbilityInput defines the request for toggling an ability
type ToggleAbilityInput struct {
	CharacterID string
	Ability     string
}

// ToggleAbilityOutput defines the response for toggling an ability
type ToggleAbilityOutput struct {
	Character *entities.Character
	// Selected reports the ability's state after the toggle
	Selected bool
}

// GenerateCharacterInput defines the request for an AI-generated character
type GenerateCharacterInput struct {
	Prompt string
	Save   bool
}

// GenerateCharacterOutput defines the response for an AI-generated character
type GenerateCharacterOutput struct {
	Character *entities.Character
	Model     string
}

// ImportCharacterInput defines the request for importing a character file
type ImportCharacterInput struct {
	Reader io.Reader
	// Mode is "strict" or "lenient"; empty uses the configured default
	Mode string
	Save bool
}

// ImportCharacterOutput defines the response for importing a character file
type ImportCharacterOutput struct {
	Character *entities.Character
}

// ExportCharacterInput defines the request for exporting a stored character
type ExportCharacterInput struct {
	CharacterID string
}

// ExportCharacterOutput defines the response for exporting a character
type ExportCharacterOutput struct {
	Filename string
	Data     []byte
}
