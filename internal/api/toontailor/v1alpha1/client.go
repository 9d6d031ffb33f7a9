package v1alpha1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/KirkDiggler/toon-tailor/internal/errors"
)

// Client wraps CharacterServiceClient with typed documents. Errors are
// converted back from gRPC status, keeping reason and metadata.
type Client struct {
	raw CharacterServiceClient
}

// NewClient creates a typed client over cc
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{raw: NewCharacterServiceClient(cc)}
}

func invoke[Resp any](ctx context.Context, c *Client, method string, req any) (*Resp, error) {
	in, err := Encode(req)
	if err != nil {
		return nil, err
	}
	out, err := c.raw.Call(ctx, method, in)
	if err != nil {
		return nil, errors.FromGRPCError(err)
	}
	resp := new(Resp)
	if err := Decode(out, resp); err != nil {
		return nil, errors.Wrapf(err, "unexpected %s response", method)
	}
	return resp, nil
}

// GetCatalog calls CharacterService.GetCatalog
func (c *Client) GetCatalog(ctx context.Context, req *GetCatalogRequest) (*GetCatalogResponse, error) {
	return invoke[GetCatalogResponse](ctx, c, MethodGetCatalog, req)
}

// NewCharacter calls CharacterService.NewCharacter
func (c *Client) NewCharacter(ctx context.Context, req *NewCharacterRequest) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c, MethodNewCharacter, req)
}

// GetCharacter calls CharacterService.GetCharacter
func (c *Client) GetCharacter(ctx context.Context, req *GetCharacterRequest) (*GetCharacterResponse, error) {
	return invoke[GetCharacterResponse](ctx, c, MethodGetCharacter, req)
}

// ListCharacters calls CharacterService.ListCharacters
func (c *Client) ListCharacters(ctx context.Context, req *ListCharactersRequest) (*ListCharactersResponse, error) {
	return invoke[ListCharactersResponse](ctx, c, MethodListCharacters, req)
}

// SaveCharacter calls CharacterService.SaveCharacter
func (c *Client) SaveCharacter(ctx context.Context, req *SaveCharacterRequest) (*SaveCharacterResponse, error) {
	return invoke[SaveCharacterResponse](ctx, c, MethodSaveCharacter, req)
}

// DeleteCharacter calls CharacterService.DeleteCharacter
func (c *Client) DeleteCharacter(ctx context.Context, req *DeleteCharacterRequest) (*DeleteCharacterResponse, error) {
	return invoke[DeleteCharacterResponse](ctx, c, MethodDeleteCharacter, req)
}

// UpdateOrigin calls CharacterService.UpdateOrigin
func (c *Client) UpdateOrigin(ctx context.Context, req *UpdateOriginRequest) (*UpdateOriginResponse, error) {
	return invoke[UpdateOriginResponse](ctx, c, MethodUpdateOrigin, req)
}

// UpdateAttribute calls CharacterService.UpdateAttribute
func (c *Client) UpdateAttribute(ctx context.Context, req *UpdateAttributeRequest) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c, MethodUpdateAttribute, req)
}

// RollAttributes calls CharacterService.RollAttributes
func (c *Client) RollAttributes(ctx context.Context, req *RollAttributesRequest) (*RollAttributesResponse, error) {
	return invoke[RollAttributesResponse](ctx, c, MethodRollAttributes, req)
}

// UpdateAppearance calls CharacterService.UpdateAppearance
func (c *Client) UpdateAppearance(ctx context.Context, req *UpdateAppearanceRequest) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c, MethodUpdateAppearance, req)
}

// SetEquipment calls CharacterService.SetEquipment
func (c *Client) SetEquipment(ctx context.Context, req *SetEquipmentRequest) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c, MethodSetEquipment, req)
}

// ToggleAbility calls CharacterService.ToggleAbility
func (c *Client) ToggleAbility(ctx context.Context, req *ToggleAbilityRequest) (*ToggleAbilityResponse, error) {
	return invoke[ToggleAbilityResponse](ctx, c, MethodToggleAbility, req)
}

// GenerateCharacter calls CharacterService.GenerateCharacter
func (c *Client) GenerateCharacter(ctx context.Context, req *GenerateCharacterRequest) (*GenerateCharacterResponse, error) {
	return invoke[GenerateCharacterResponse](ctx, c, MethodGenerateCharacter, req)
}

// ImportCharacter calls CharacterService.ImportCharacter
func (c *Client) ImportCharacter(ctx context.Context, req *ImportCharacterRequest) (*CharacterResponse, error) {
	return invoke[CharacterResponse](ctx, c, MethodImportCharacter, req)
}

// ExportCharacter calls CharacterService.ExportCharacter
func (c *Client) ExportCharacter(ctx context.Context, req *ExportCharacterRequest) (*ExportCharacterResponse, error) {
	return invoke[ExportCharacterResponse](ctx, c, MethodExportCharacter, req)
}
