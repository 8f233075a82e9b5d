package intake

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Server exposes a Store over the intake gRPC service.
type Server struct {
	UnimplementedIntakeServer
	Store Store
}

func (s *Server) Put(ctx context.Context, in *structpb.Struct) (*wrapperspb.StringValue, error) {
	_ = ctx
	if s == nil || s.Store == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing store")
	}
	name, text, err := blobFields(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	id, err := s.Store.Put(name, []byte(text))
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.String(id), nil
}

func (s *Server) Get(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	if s == nil || s.Store == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing store")
	}
	b, err := s.Store.Get(in.GetValue())
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.Bytes(b), nil
}

func (s *Server) Has(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	_ = ctx
	if s == nil || s.Store == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing store")
	}
	return wrapperspb.Bool(s.Store.Has(in.GetValue())), nil
}

// blobFields unpacks the {"name", "text"} struct the Put method carries.
func blobFields(in *structpb.Struct) (name, text string, err error) {
	fields := in.GetFields()
	nameVal, ok := fields["name"]
	if !ok {
		return "", "", ErrInvalidName
	}
	name = nameVal.GetStringValue()
	if name == "" {
		return "", "", ErrInvalidName
	}
	if textVal, ok := fields["text"]; ok {
		text = textVal.GetStringValue()
	}
	return name, text, nil
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case err == ErrNotFound:
		return status.Error(codes.NotFound, err.Error())
	case err == ErrInvalidName:
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
