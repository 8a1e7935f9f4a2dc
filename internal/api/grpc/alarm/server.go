package alarm

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	domain "github.com/oshokin/alarm-led/internal/domain/alarm"
)

// Field names of the GetStatus response.
const (
	FieldStatus          = "status"
	FieldThreshold       = "threshold"
	FieldRunning         = "running"
	FieldGeneration      = "generation"
	FieldPublishInterval = "publish_interval"
	FieldLastPublished   = "last_published"
)

// Service abstracts the business operations the transport layer depends on.
type Service interface {
	Status(ctx context.Context) domain.Status
}

// Server implements the StatusService gRPC API.
type Server struct {
	// service provides the alarm and loop state.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// GetStatus returns the current alarm and publish loop state.
func (s *Server) GetStatus(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	response, err := toProtoStatus(s.service.Status(ctx))
	if err != nil {
		return nil, status.Error(codes.Internal, "unable to encode status")
	}

	return response, nil
}

// toProtoStatus converts a domain.Status to a protobuf Struct.
func toProtoStatus(st domain.Status) (*structpb.Struct, error) {
	fields := map[string]any{
		FieldStatus:          st.Active,
		FieldThreshold:       st.Threshold,
		FieldRunning:         st.Running,
		FieldGeneration:      st.Generation,
		FieldPublishInterval: st.PublishInterval.String(),
	}

	if !st.LastPublished.IsZero() {
		fields[FieldLastPublished] = st.LastPublished.UTC().Format(time.RFC3339Nano)
	}

	return structpb.NewStruct(fields)
}
