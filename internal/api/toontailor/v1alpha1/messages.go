package v1alpha1

import (
	"bytes"
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/toon-tailor/internal/catalog"
	"github.com/KirkDiggler/toon-tailor/internal/engine"
	"github.com/KirkDiggler/toon-tailor/internal/entities"
	"github.com/KirkDiggler/toon-tailor/internal/errors"
)

// GetCatalogRequest is the GetCatalog request document
type GetCatalogRequest struct{}

// GetCatalogResponse is the GetCatalog response document
type GetCatalogResponse struct {
	Catalog *catalog.Data `json:"catalog"`
}

// NewCharacterRequest is the NewCharacter request document
type NewCharacterRequest struct {
	Name string `json:"name,omitempty"`
	Save bool   `json:"save,omitempty"`
}

// CharacterResponse carries a single character
type CharacterResponse struct {
	Character *entities.Character `json:"character"`
}

// GetCharacterRequest is the GetCharacter request document
type GetCharacterRequest struct {
	CharacterID string `json:"characterId"`
}

// GetCharacterResponse is the GetCharacter response document
type GetCharacterResponse struct {
	Character *entities.Character `json:"character"`
	Abilities *engine.Abilities   `json:"abilities"`
}

// ListCharactersRequest is the ListCharacters request document
type ListCharactersRequest struct{}

// ListCharactersResponse is the ListCharacters response document
type ListCharactersResponse struct {
	Characters []*entities.Character `json:"characters"`
}

// SaveCharacterRequest is the SaveCharacter request document
type SaveCharacterRequest struct {
	Character *entities.Character `json:"character"`
}

// SaveCharacterResponse is the SaveCharacter response document
type SaveCharacterResponse struct {
	Character *entities.Character `json:"character"`
	Created   bool                `json:"created"`
}

// DeleteCharacterRequest is the DeleteCharacter request document
type DeleteCharacterRequest struct {
	CharacterID string `json:"characterId"`
}

// DeleteCharacterResponse is the DeleteCharacter response document
type DeleteCharacterResponse struct {
	Deleted bool `json:"deleted"`
}

// UpdateOriginRequest is the UpdateOrigin request document
type UpdateOriginRequest struct {
	CharacterID string  `json:"characterId"`
	Name        *string `json:"name,omitempty"`
	Race        string  `json:"race,omitempty"`
	Class       string  `json:"class,omitempty"`
	Gender      string  `json:"gender,omitempty"`
}

// UpdateOriginResponse is the UpdateOrigin response document
type UpdateOriginResponse struct {
	Character *entities.Character `json:"character"`
	Abilities *engine.Abilities   `json:"abilities"`
}

// UpdateAttributeRequest is the UpdateAttribute request document
type UpdateAttributeRequest struct {
	CharacterID string `json:"characterId"`
	Attribute   string `json:"attribute"`
	Base        int    `json:"base"`
}

// RollAttributesRequest is the RollAttributes request document
type RollAttributesRequest struct {
	CharacterID string `json:"characterId"`
}

// RollAttributesResponse is the RollAttributes response document
type RollAttributesResponse struct {
	Character *entities.Character `json:"character"`
	Rolled    entities.Attributes `json:"rolled"`
}

// UpdateAppearanceRequest is the UpdateAppearance request document
type UpdateAppearanceRequest struct {
	CharacterID string              `json:"characterId"`
	Appearance  entities.Appearance `json:"appearance"`
}

// SetEquipmentRequest is the SetEquipment request document
type SetEquipmentRequest struct {
	CharacterID string `json:"characterId"`
	Slot        string `json:"slot"`
	Key         string `json:"key"`
}

// ToggleAbilityRequest is the ToggleAbility request document
type ToggleAbilityRequest struct {
	CharacterID string `json:"characterId"`
	Ability     string `json:"ability"`
}

// ToggleAbilityResponse is the ToggleAbility response document
type ToggleAbilityResponse struct {
	Character *entities.Character `json:"character"`
	Selected  bool                `json:"selected"`
}

// GenerateCharacterRequest is the GenerateCharacter request document
type GenerateCharacterRequest struct {
	Prompt string `json:"prompt"`
	Save   bool   `json:"save,omitempty"`
}

// GenerateCharacterResponse is the GenerateCharacter response document
type GenerateCharacterResponse struct {
	Character *entities.Character `json:"character"`
	Model     string              `json:"model,omitempty"`
}

// ImportCharacterRequest carries the file contents as text
type ImportCharacterRequest struct {
	Data string `json:"data"`
	Mode string `json:"mode,omitempty"`
	Save bool   `json:"save,omitempty"`
}

// ExportCharacterRequest is the ExportCharacter request document
type ExportCharacterRequest struct {
	CharacterID string `json:"characterId"`
}

// ExportCharacterResponse carries the file name and contents
type ExportCharacterResponse struct {
	Filename string `json:"filename"`
	Data     string `json:"data"`
}

// Encode converts a document to a Struct
func Encode(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "message is not a JSON object")
	}
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build message")
	}
	return s, nil
}

// Decode fills v from a Struct. Unknown fields are rejected.
func Decode(s *structpb.Struct, v any) error {
	if s == nil {
		s = &structpb.Struct{}
	}
	data, err := json.Marshal(s.AsMap())
	if err != nil {
		return errors.Wrap(err, "failed to read message")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request").
			WithMeta("detail", err.Error())
	}
	return nil
}
