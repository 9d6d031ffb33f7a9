// Package v1alpha1 handles the toontailor character gRPC service
package v1alpha1

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/protobuf/types/known/structpb"

	apiv1alpha1 "github.com/KirkDiggler/toon-tailor/internal/api/toontailor/v1alpha1"
	"github.com/KirkDiggler/toon-tailor/internal/errors"
	"github.com/KirkDiggler/toon-tailor/internal/services/character"
)

// HandlerConfig holds dependencies for the character handler
type HandlerConfig struct {
	CharacterService character.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.CharacterService == nil {
		return errors.InvalidArgument("character service is required")
	}
	return nil
}

// Handler implements the CharacterService gRPC server
type Handler struct {
	apiv1alpha1.UnimplementedCharacterServiceServer
	characterService character.Service
}

// NewHandler creates a new character handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{characterService: cfg.CharacterService}, nil
}

var _ apiv1alpha1.CharacterServiceServer = (*Handler)(nil)

// respond encodes a response document, or converts err to a gRPC status
func respond(ctx context.Context, method string, resp any, err error) (*structpb.Struct, error) {
	if err != nil {
		if errors.IsInternal(err) {
			slog.ErrorContext(ctx, "request failed", "method", method, "error", err)
		}
		return nil, errors.ToGRPCError(err)
	}
	out, err := apiv1alpha1.Encode(resp)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

// GetCatalog returns the reference tables
func (h *Handler) GetCatalog(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in apiv1alpha1.GetCatalogRequest
	if err := apiv1alpha1.Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.GetCatalog(ctx, &character.GetCatalogInput{})
	if err != nil {
		return respond(ctx, apiv1alpha1.MethodGetCatalog, nil, err)
	}
	return respond(ctx, apiv1alpha1.MethodGetCatalog, &apiv1alpha1.GetCatalogResponse{Catalog: out.Catalog}, nil)
}

// NewCharacter creates a default character
func (h *Handler) NewCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in apiv1alpha1.NewCharacterRequest
	if err := apiv1alpha1.Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.NewCharacter(ctx, &character.NewCharacterInput{Name: in.Name, Save: in.Save})
	if err != nil {
		return respond(ctx, apiv1alpha1.MethodNewCharacter, nil, err)
	}
	return respond(ctx, apiv1alpha1.MethodNewCharacter, &apiv1alpha1.CharacterResponse{Character: out.Character}, nil)
}

// GetCharacter returns a stored character and its available abilities
func (h *Handler) GetCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in apiv1alpha1.GetCharacterRequest
	if err := apiv1alpha1.Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("characterId is required"))
	}

	out, err := h.characterService.GetCharacter(ctx, &character.GetCharacterInput{CharacterID: in.CharacterID})
	if err != nil {
		return respond(ctx, apiv1alpha1.MethodGetCharacter, nil, err)
	}
	return respond(ctx, apiv1alpha1.MethodGetCharacter, &apiv1alpha1.GetCharacterResponse{
		Character: out.Character,
		Abilities: out.Abilities,
	}, nil)
}

// ListCharacters returns every stored character
func (h *Handler) ListCharacters(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in apiv1alpha1.ListCharactersRequest
	if err := apiv1alpha1.Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.ListCharacters(ctx, &character.ListCharactersInput{})
	if err != nil {
		return respond(ctx, apiv1alpha1.MethodListCharacters, nil, err)
	}
	return respond(ctx, apiv1alpha1.MethodListCharacters, &apiv1alpha1.ListCharactersResponse{Characters: out.Characters}, nil)
}

// SaveCharacter stores a character
func (h *Handler) SaveCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in apiv1alpha1.SaveCharacterRequest
	if err := apiv1alpha1.Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.Character == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("character is required"))
	}

	out, err := h.characterService.SaveCharacter(ctx, &character.SaveCharacterInput{Character: in.Character})
	if err != nil {
		return respond(ctx, apiv1alpha1.MethodSaveCharacter, nil, err)
	}
	return respond(ctx, apiv1alpha1.MethodSaveCharacter, &apiv1alpha1.SaveCharacterResponse{
		Character: out.Character,
		Created:   out.Created,
	}, nil)
}

// DeleteCharacter removes a stored character
func (h *Handler) DeleteCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in apiv1alpha1.DeleteCharacterRequest
	if err := apiv1alpha1.Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("characterId is required"))
	}

	out, err := h.characterService.DeleteCharacter(ctx, &character.DeleteCharacterInput{CharacterID: in.CharacterID})
	if err != nil {
		return respond(ctx, apiv1alpha1.MethodDeleteCharacter, nil, err)
	}
	return respond(ctx, apiv1alpha1.MethodDeleteCharacter, &apiv1alpha1.DeleteCharacterResponse{Deleted: out.Deleted}, nil)
}

// UpdateOrigin changes name, race, class and gender
func (h *Handler) UpdateOrigin(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in apiv1alpha1.UpdateOriginRequest
	if err := apiv1alpha1.Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.UpdateOrigin(ctx, &character.UpdateOriginInput{
		CharacterID: in.CharacterID,
		Name:        in.Name,
		Race:        in.Race,
		Class:       in.Class,
		Gender:      in.Gender,
	})
	if err != nil {
		return respond(ctx, apiv1alpha1.MethodUpdateOrigin, nil, err)
	}
	return respond(ctx, apiv1alpha1.MethodUpdateOrigin, &apiv1alpha1.UpdateOriginResponse{
		Character: out.Character,
		Abilities: out.Abilities,
	}, nil)
}

// UpdateAttribute sets one base attribute
func (h *Handler) UpdateAttribute(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in apiv1alpha1.UpdateAttributeRequest
	if err := apiv1alpha1.Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.UpdateAttribute(ctx, &character.UpdateAttributeInput{
		CharacterID: in.CharacterID,
		Attribute:   strings.ToLower(in.Attribute),
		Base:        in.Base,
	})
	if err != nil {
		return respond(ctx, apiv1alpha1.MethodUpdateAttribute, nil, err)
	}
	return respond(ctx, apiv1alpha1.MethodUpdateAttribute, &apiv1alpha1.CharacterResponse{Character: out.Character}, nil)
}

// RollAttributes rerolls the base attributes
func (h *Handler) RollAttributes(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in apiv1alpha1.RollAttributesRequest
	if err := apiv1alpha1.Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.RollAttributes(ctx, &character.RollAttributesInput{CharacterID: in.CharacterID})
	if err != nil {
		return respond(ctx, apiv1alpha1.MethodRollAttributes, nil, err)
	}
	return respond(ctx, apiv1alpha1.MethodRollAttributes, &apiv1alpha1.RollAttributesResponse{
		Character: out.Character,
		Rolled:    out.Rolled,
	}, nil)
}

// UpdateAppearance replaces the appearance
func (h *Handler) UpdateAppearance(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in apiv1alpha1.UpdateAppearanceRequest
	if err := apiv1alpha1.Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.UpdateAppearance(ctx, &character.UpdateAppearanceInput{
		CharacterID: in.CharacterID,
		Appearance:  in.Appearance,
	})
	if err != nil {
		return respond(ctx, apiv1alpha1.MethodUpdateAppearance, nil, err)
	}
	return respond(ctx, apiv1alpha1.MethodUpdateAppearance, &apiv1alpha1.CharacterResponse{Character: out.Character}, nil)
}

// SetEquipment sets or clears one slot
func (h *Handler) SetEquipment(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in apiv1alpha1.SetEquipmentRequest
	if err := apiv1alpha1.Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.SetEquipment(ctx, &character.SetEquipmentInput{
		CharacterID: in.CharacterID,
		Slot:        strings.ToLower(in.Slot),
		Key:         in.Key,
	})
	if err != nil {
		return respond(ctx, apiv1alpha1.MethodSetEquipment, nil, err)
	}
	return respond(ctx, apiv1alpha1.MethodSetEquipment, &apiv1alpha1.CharacterResponse{Character: out.Character}, nil)
}

// ToggleAbility selects or deselects an ability
func (h *Handler) ToggleAbility(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in apiv1alpha1.ToggleAbilityRequest
	if err := apiv1alpha1.Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.ToggleAbility(ctx, &character.ToggleAbilityInput{
		CharacterID: in.CharacterID,
		Ability:     in.Ability,
	})
	if err != nil {
		return respond(ctx, apiv1alpha1.MethodToggleAbility, nil, err)
	}
	return respond(ctx, apiv1alpha1.MethodToggleAbility, &apiv1alpha1.ToggleAbilityResponse{
		Character: out.Character,
		Selected:  out.Selected,
	}, nil)
}

// GenerateCharacter asks the AI service for a character
func (h *Handler) GenerateCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in apiv1alpha1.GenerateCharacterRequest
	if err := apiv1alpha1.Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if strings.TrimSpace(in.Prompt) == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("prompt is required"))
	}

	out, err := h.characterService.GenerateCharacter(ctx, &character.GenerateCharacterInput{
		Prompt: in.Prompt,
		Save:   in.Save,
	})
	if err != nil {
		return respond(ctx, apiv1alpha1.MethodGenerateCharacter, nil, err)
	}
	return respond(ctx, apiv1alpha1.MethodGenerateCharacter, &apiv1alpha1.GenerateCharacterResponse{
		Character: out.Character,
		Model:     out.Model,
	}, nil)
}

// ImportCharacter reads an uploaded character file
func (h *Handler) ImportCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in apiv1alpha1.ImportCharacterRequest
	if err := apiv1alpha1.Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.characterService.ImportCharacter(ctx, &character.ImportCharacterInput{
		Reader: strings.NewReader(in.Data),
		Mode:   in.Mode,
		Save:   in.Save,
	})
	if err != nil {
		return respond(ctx, apiv1alpha1.MethodImportCharacter, nil, err)
	}
	return respond(ctx, apiv1alpha1.MethodImportCharacter, &apiv1alpha1.CharacterResponse{Character: out.Character}, nil)
}

// ExportCharacter renders a stored character as a file
func (h *Handler) ExportCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in apiv1alpha1.ExportCharacterRequest
	if err := apiv1alpha1.Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.CharacterID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("characterId is required"))
	}

	out, err := h.characterService.ExportCharacter(ctx, &character.ExportCharacterInput{CharacterID: in.CharacterID})
	if err != nil {
		return respond(ctx, apiv1alpha1.MethodExportCharacter, nil, err)
	}
	return respond(ctx, apiv1alpha1.MethodExportCharacter, &apiv1alpha1.ExportCharacterResponse{
		Filename: out.Filename,
		Data:     string(out.Data),
	}, nil)
}
