// Package v1alpha1 describes the toontailor.api.v1alpha1.CharacterService
// gRPC service. Every method carries a JSON document in a
// google.protobuf.Struct; the document types live in messages.go.
package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "toontailor.api.v1alpha1.CharacterService"

// Method names
const (
	MethodGetCatalog        = "GetCatalog"
	MethodNewCharacter      = "NewCharacter"
	MethodGetCharacter      = "GetCharacter"
	MethodListCharacters    = "ListCharacters"
	MethodSaveCharacter     = "SaveCharacter"
	MethodDeleteCharacter   = "DeleteCharacter"
	MethodUpdateOrigin      = "UpdateOrigin"
	MethodUpdateAttribute   = "UpdateAttribute"
	MethodRollAttributes    = "RollAttributes"
	MethodUpdateAppearance  = "UpdateAppearance"
	MethodSetEquipment      = "SetEquipment"
	MethodToggleAbility     = "ToggleAbility"
	MethodGenerateCharacter = "GenerateCharacter"
	MethodImportCharacter   = "ImportCharacter"
	MethodExportCharacter   = "ExportCharacter"
)

// FullMethod returns "/service/method" as used by interceptors
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// CharacterServiceServer is the server API for CharacterService
type CharacterServiceServer interface {
	GetCatalog(context.Context, *structpb.Struct) (*structpb.Struct, error)
	NewCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListCharacters(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SaveCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateOrigin(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateAttribute(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RollAttributes(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateAppearance(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetEquipment(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ToggleAbility(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GenerateCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ImportCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ExportCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedCharacterServiceServer can be embedded to have forward
// compatible implementations
type UnimplementedCharacterServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedCharacterServiceServer) GetCatalog(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodGetCatalog)
}
func (UnimplementedCharacterServiceServer) NewCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodNewCharacter)
}
func (UnimplementedCharacterServiceServer) GetCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodGetCharacter)
}
func (UnimplementedCharacterServiceServer) ListCharacters(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodListCharacters)
}
func (UnimplementedCharacterServiceServer) SaveCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodSaveCharacter)
}
func (UnimplementedCharacterServiceServer) DeleteCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodDeleteCharacter)
}
func (UnimplementedCharacterServiceServer) UpdateOrigin(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodUpdateOrigin)
}
func (UnimplementedCharacterServiceServer) UpdateAttribute(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodUpdateAttribute)
}
func (UnimplementedCharacterServiceServer) RollAttributes(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodRollAttributes)
}
func (UnimplementedCharacterServiceServer) UpdateAppearance(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodUpdateAppearance)
}
func (UnimplementedCharacterServiceServer) SetEquipment(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodSetEquipment)
}
func (UnimplementedCharacterServiceServer) ToggleAbility(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodToggleAbility)
}
func (UnimplementedCharacterServiceServer) GenerateCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodGenerateCharacter)
}
func (UnimplementedCharacterServiceServer) ImportCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodImportCharacter)
}
func (UnimplementedCharacterServiceServer) ExportCharacter(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, unimplemented(MethodExportCharacter)
}

type unaryCall func(srv CharacterServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)

func methodDesc(method string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CharacterServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(method),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(CharacterServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// CharacterServiceDesc is the grpc.ServiceDesc for CharacterService
var CharacterServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CharacterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		methodDesc(MethodGetCatalog, CharacterServiceServer.GetCatalog),
		methodDesc(MethodNewCharacter, CharacterServiceServer.NewCharacter),
		methodDesc(MethodGetCharacter, CharacterServiceServer.GetCharacter),
		methodDesc(MethodListCharacters, CharacterServiceServer.ListCharacters),
		methodDesc(MethodSaveCharacter, CharacterServiceServer.SaveCharacter),
		methodDesc(MethodDeleteCharacter, CharacterServiceServer.DeleteCharacter),
		methodDesc(MethodUpdateOrigin, CharacterServiceServer.UpdateOrigin),
		methodDesc(MethodUpdateAttribute, CharacterServiceServer.UpdateAttribute),
		methodDesc(MethodRollAttributes, CharacterServiceServer.RollAttributes),
		methodDesc(MethodUpdateAppearance, CharacterServiceServer.UpdateAppearance),
		methodDesc(MethodSetEquipment, CharacterServiceServer.SetEquipment),
		methodDesc(MethodToggleAbility, CharacterServiceServer.ToggleAbility),
		methodDesc(MethodGenerateCharacter, CharacterServiceServer.GenerateCharacter),
		methodDesc(MethodImportCharacter, CharacterServiceServer.ImportCharacter),
		methodDesc(MethodExportCharacter, CharacterServiceServer.ExportCharacter),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "toontailor/api/v1alpha1/character.proto",
}

// RegisterCharacterServiceServer registers srv with s
func RegisterCharacterServiceServer(s grpc.ServiceRegistrar, srv CharacterServiceServer) {
	s.RegisterService(&CharacterServiceDesc, srv)
}

// CharacterServiceClient invokes CharacterService methods by name
type CharacterServiceClient interface {
	Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type characterServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewCharacterServiceClient creates a client over cc
func NewCharacterServiceClient(cc grpc.ClientConnInterface) CharacterServiceClient {
	return &characterServiceClient{cc: cc}
}

func (c *characterServiceClient) Call(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
