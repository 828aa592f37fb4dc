// Package proto describes the grievdesk.GrievanceService gRPC API. Messages
// are protobuf well-known types, so no generated code is needed: forms and
// catalog lists travel as structpb.Struct, tokens and names as wrappers.
package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "grievdesk.GrievanceService"

const (
	PingFullMethodName            = "/" + ServiceName + "/Ping"
	LoginFullMethodName           = "/" + ServiceName + "/Login"
	GetCatalogFullMethodName      = "/" + ServiceName + "/GetCatalog"
	SubmitGrievanceFullMethodName = "/" + ServiceName + "/SubmitGrievance"
)

// GrievanceServiceServer is the server API.
type GrievanceServiceServer interface {
	Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error)
	// Login takes the raw identifier and returns {access_token, actor_name}.
	Login(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	// GetCatalog returns the reference lists keyed by section header.
	GetCatalog(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	// SubmitGrievance takes the flat form and returns the PDF.
	SubmitGrievance(context.Context, *structpb.Struct) (*wrapperspb.BytesValue, error)
}

// UnimplementedGrievanceServiceServer can be embedded to get forward
// compatible implementations.
type UnimplementedGrievanceServiceServer struct{}

func (UnimplementedGrievanceServiceServer) Ping(context.Context, *emptypb.Empty) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Ping not implemented")
}

func (UnimplementedGrievanceServiceServer) Login(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}

func (UnimplementedGrievanceServiceServer) GetCatalog(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetCatalog not implemented")
}

func (UnimplementedGrievanceServiceServer) SubmitGrievance(context.Context, *structpb.Struct) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitGrievance not implemented")
}

func RegisterGrievanceServiceServer(s grpc.ServiceRegistrar, srv GrievanceServiceServer) {
	s.RegisterService(&GrievanceServiceDesc, srv)
}

// unaryHandler adapts a typed method to grpc.MethodDesc.Handler.
func unaryHandler[Req any](fullMethod string, call func(GrievanceServiceServer, context.Context, *Req) (interface{}, error)) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(GrievanceServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(GrievanceServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var GrievanceServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GrievanceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Ping",
			Handler: unaryHandler(PingFullMethodName, func(s GrievanceServiceServer, ctx context.Context, in *emptypb.Empty) (interface{}, error) {
				return s.Ping(ctx, in)
			}),
		},
		{
			MethodName: "Login",
			Handler: unaryHandler(LoginFullMethodName, func(s GrievanceServiceServer, ctx context.Context, in *wrapperspb.StringValue) (interface{}, error) {
				return s.Login(ctx, in)
			}),
		},
		{
			MethodName: "GetCatalog",
			Handler: unaryHandler(GetCatalogFullMethodName, func(s GrievanceServiceServer, ctx context.Context, in *emptypb.Empty) (interface{}, error) {
				return s.GetCatalog(ctx, in)
			}),
		},
		{
			MethodName: "SubmitGrievance",
			Handler: unaryHandler(SubmitGrievanceFullMethodName, func(s GrievanceServiceServer, ctx context.Context, in *structpb.Struct) (interface{}, error) {
				return s.SubmitGrievance(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "grievdesk/service.proto",
}

// GrievanceServiceClient is the client API.
type GrievanceServiceClient interface {
	Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Login(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetCatalog(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	SubmitGrievance(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
}

type grievanceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewGrievanceServiceClient(cc grpc.ClientConnInterface) GrievanceServiceClient {
	return &grievanceServiceClient{cc}
}

func (c *grievanceServiceClient) Ping(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, PingFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *grievanceServiceClient) Login(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, LoginFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *grievanceServiceClient) GetCatalog(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetCatalogFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *grievanceServiceClient) SubmitGrievance(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, SubmitGrievanceFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
