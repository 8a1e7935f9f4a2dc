package alarm

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	// ServiceName is the fully qualified name of the status service.
	ServiceName = "alarmled.v1.StatusService"

	getStatusFullMethod = "/" + ServiceName + "/GetStatus"
)

// StatusServer is the server API of the status service.
type StatusServer interface {
	GetStatus(ctx context.Context, req *emptypb.Empty) (*structpb.Struct, error)
}

// ServiceDesc describes the status service for grpc.ServiceRegistrar.
var ServiceDesc = grpc.ServiceDesc{ //nolint:gochecknoglobals // Registered by reference like generated descriptors.
	ServiceName: ServiceName,
	HandlerType: (*StatusServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetStatus",
			Handler:    getStatusHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "alarmled/v1/status.proto",
}

// Register adds the status service to the registrar.
func Register(registrar grpc.ServiceRegistrar, srv StatusServer) {
	registrar.RegisterService(&ServiceDesc, srv)
}

//nolint:revive // Signature is fixed by grpc.MethodHandler.
func getStatusHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}

	if interceptor == nil {
		return srv.(StatusServer).GetStatus(ctx, in) //nolint:forcetypeassert // Guaranteed by HandlerType.
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: getStatusFullMethod,
	}

	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(StatusServer).GetStatus(ctx, req.(*emptypb.Empty)) //nolint:forcetypeassert // Same as above.
	}

	return interceptor(ctx, in, info, handler)
}
