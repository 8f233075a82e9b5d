package intake

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// IntakeServer is the server API for the trace intake gRPC service.
//
// We intentionally use protobuf well-known types (Struct for the named blob,
// wrappers elsewhere) so this package does not require a protoc/codegen
// toolchain.
//
// Proto definition: intake.proto.
type IntakeServer interface {
	// Put stores a named trace blob ({"name": string, "text": string}) and
	// returns its CID fingerprint.
	Put(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error)
	Get(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error)
	Has(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
}

// UnimplementedIntakeServer can be embedded to have forward compatible implementations.
type UnimplementedIntakeServer struct{}

func (UnimplementedIntakeServer) Put(context.Context, *structpb.Struct) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Put not implemented")
}
func (UnimplementedIntakeServer) Get(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Get not implemented")
}
func (UnimplementedIntakeServer) Has(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Has not implemented")
}

// RegisterIntakeServer registers the intake service on a gRPC server.
func RegisterIntakeServer(s grpc.ServiceRegistrar, srv IntakeServer) {
	s.RegisterService(&Intake_ServiceDesc, srv)
}

// IntakeClient is the client API for the trace intake gRPC service.
type IntakeClient interface {
	Put(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Get(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	Has(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
}

type intakeClient struct{ cc grpc.ClientConnInterface }

func NewIntakeClient(cc grpc.ClientConnInterface) IntakeClient { return &intakeClient{cc: cc} }

func (c *intakeClient) Put(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	err := c.cc.Invoke(ctx, "/uconn.tracecheck.intake.v1.Intake/Put", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *intakeClient) Get(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	err := c.cc.Invoke(ctx, "/uconn.tracecheck.intake.v1.Intake/Get", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *intakeClient) Has(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	err := c.cc.Invoke(ctx, "/uconn.tracecheck.intake.v1.Intake/Has", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func _Intake_Put_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IntakeServer).Put(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/uconn.tracecheck.intake.v1.Intake/Put"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IntakeServer).Put(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _Intake_Get_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IntakeServer).Get(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/uconn.tracecheck.intake.v1.Intake/Get"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IntakeServer).Get(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Intake_Has_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IntakeServer).Has(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/uconn.tracecheck.intake.v1.Intake/Has"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IntakeServer).Has(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// Intake_ServiceDesc is the grpc.ServiceDesc for the Intake service.
var Intake_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "uconn.tracecheck.intake.v1.Intake",
	HandlerType: (*IntakeServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Put", Handler: _Intake_Put_Handler},
		{MethodName: "Get", Handler: _Intake_Get_Handler},
		{MethodName: "Has", Handler: _Intake_Has_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "intake.proto",
}
