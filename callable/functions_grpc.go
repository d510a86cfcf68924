package callable

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Payloads travel as google.protobuf.Struct so the gRPC surface carries the
// same JSON objects as the HTTP callable protocol.

const (
	FunctionsServiceName                = "accounts.Functions"
	Functions_DeleteUser_FullMethodName = "/accounts.Functions/DeleteUser"
)

type FunctionsClient interface {
	DeleteUser(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type functionsClient struct {
	cc grpc.ClientConnInterface
}

func NewFunctionsClient(cc grpc.ClientConnInterface) FunctionsClient {
	return &functionsClient{cc}
}

func (c *functionsClient) DeleteUser(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	err := c.cc.Invoke(ctx, Functions_DeleteUser_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

type FunctionsServer interface {
	DeleteUser(context.Context, *structpb.Struct) (*structpb.Struct, error)
	mustEmbedUnimplementedFunctionsServer()
}

// UnimplementedFunctionsServer must be embedded by FunctionsServer
// implementations.
type UnimplementedFunctionsServer struct{}

func (UnimplementedFunctionsServer) DeleteUser(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteUser not implemented")
}
func (UnimplementedFunctionsServer) mustEmbedUnimplementedFunctionsServer() {}

func RegisterFunctionsServer(s grpc.ServiceRegistrar, srv FunctionsServer) {
	s.RegisterService(&Functions_ServiceDesc, srv)
}

func _Functions_DeleteUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FunctionsServer).DeleteUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Functions_DeleteUser_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FunctionsServer).DeleteUser(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var Functions_ServiceDesc = grpc.ServiceDesc{
	ServiceName: FunctionsServiceName,
	HandlerType: (*FunctionsServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "DeleteUser",
			Handler:    _Functions_DeleteUser_Handler,
		},
	},
	Streams: []grpc.StreamDesc{},
}
