package alarm

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"

	domain "github.com/oshokin/alarm-led/internal/domain/alarm"
)

// fakeService returns a fixed status.
type fakeService struct {
	// status is returned by every call.
	status domain.Status
}

func (f *fakeService) Status(context.Context) domain.Status { return f.status }

// startServer serves the status and health services over an in-memory listener.
func startServer(t *testing.T, svc Service) *Client {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()

	Register(srv, NewServer(svc))

	healthServer := health.NewServer()
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, healthServer)

	go func() {
		_ = srv.Serve(lis)
	}()

	t.Cleanup(srv.Stop)

	client, err := Dial(context.Background(), "passthrough:///bufnet",
		WithCallTimeout(time.Second),
		WithDialOptions(grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		})),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

// TestServer_GetStatus checks the encoded fields of a direct call.
func TestServer_GetStatus(t *testing.T) {
	t.Parallel()

	published := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := NewServer(&fakeService{
		status: domain.Status{
			Snapshot: domain.Snapshot{
				Active:    true,
				Threshold: 30,
			},
			Running:         true,
			Generation:      3,
			PublishInterval: 5 * time.Second,
			LastPublished:   published,
		},
	})

	response, err := s.GetStatus(context.Background(), new(emptypb.Empty))
	require.NoError(t, err)

	fields := response.AsMap()
	require.Equal(t, true, fields[FieldStatus])
	require.Equal(t, 30.0, fields[FieldThreshold])
	require.Equal(t, true, fields[FieldRunning])
	require.Equal(t, 3.0, fields[FieldGeneration])
	require.Equal(t, "5s", fields[FieldPublishInterval])
	require.Equal(t, "2024-05-01T12:00:00Z", fields[FieldLastPublished])
}

// TestServer_GetStatus_NeverPublished ensures last_published is omitted before the first report.
func TestServer_GetStatus_NeverPublished(t *testing.T) {
	t.Parallel()

	s := NewServer(new(fakeService))

	response, err := s.GetStatus(context.Background(), new(emptypb.Empty))
	require.NoError(t, err)
	require.NotContains(t, response.GetFields(), FieldLastPublished)
	require.False(t, response.GetFields()[FieldStatus].GetBoolValue())
}

// TestClient_Roundtrip calls the service over gRPC.
func TestClient_Roundtrip(t *testing.T) {
	t.Parallel()

	client := startServer(t, &fakeService{
		status: domain.Status{
			Snapshot: domain.Snapshot{Threshold: 12.5},
			Running:  true,
		},
	})

	response, err := client.GetStatus(context.Background())
	require.NoError(t, err)
	require.Equal(t, 12.5, response.GetFields()[FieldThreshold].GetNumberValue())
	require.True(t, response.GetFields()[FieldRunning].GetBoolValue())
}

// TestHealth_ReportsServing checks the health service registered next to the status service.
func TestHealth_ReportsServing(t *testing.T) {
	t.Parallel()

	client := startServer(t, new(fakeService))

	status, err := client.Health(context.Background())
	require.NoError(t, err)
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, status)
}

// TestDial_ValidatesAddress verifies that Dial rejects empty addresses.
func TestDial_ValidatesAddress(t *testing.T) {
	t.Parallel()

	c, err := Dial(context.Background(), "")
	require.Error(t, err)
	require.Nil(t, c)
}

// TestClient_callContext checks timeout vs cancel-only behavior of callContext.
func TestClient_callContext(t *testing.T) {
	t.Parallel()

	c := &Client{
		callTimeout: 0,
	}

	ctx, cancel := c.callContext(context.Background())
	cancel()

	require.NotNil(t, ctx)

	c.callTimeout = 10 * time.Millisecond

	ctx, cancel = c.callContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	require.WithinDuration(t, time.Now().Add(10*time.Millisecond), deadline, 30*time.Millisecond)
}
