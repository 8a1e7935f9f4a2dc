package payload

import (
	"context"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/protobuf/types/known/structpb"

	domain "github.com/oshokin/alarm-led/internal/domain/alarm"
	"github.com/oshokin/alarm-led/internal/logger"
)

// TestEncode_StatusDocument checks the JSON shape of a status report.
func TestEncode_StatusDocument(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)

	data, err := Encode(domain.NewStatusMessage(ts, true))
	require.NoError(t, err)

	var document map[string]any
	require.NoError(t, json.Unmarshal(data, &document))
	require.Equal(t, "2024-05-01T10:00:00Z", document["timestamp"])
	require.Equal(t, map[string]any{"status": true}, document["metrics"])

	_, err = Encode(nil)
	require.ErrorIs(t, err, ErrNilMessage)
}

// TestDecode covers the accepted document shapes and the rejected ones.
func TestDecode(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	msg, err := Decode(ctx, []byte(`{"timestamp":"2024-05-01T10:00:00Z","metrics":{"value":35,"unit":"C"}}`))
	require.NoError(t, err)
	require.NotNil(t, msg.Timestamp)
	require.True(t, msg.Timestamp.Equal(time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)))
	require.Equal(t, 35.0, msg.Metrics["value"])
	require.Equal(t, "C", msg.Metrics["unit"])

	// Epoch milliseconds.
	msg, err = Decode(ctx, []byte(`{"timestamp":1714557600000,"metrics":{}}`))
	require.NoError(t, err)
	require.Equal(t, int64(1714557600000), msg.Timestamp.UnixMilli())

	// No timestamp, no metrics.
	msg, err = Decode(ctx, []byte(`{}`))
	require.NoError(t, err)
	require.Nil(t, msg.Timestamp)
	require.Empty(t, msg.Metrics)

	// Not JSON.
	_, err = Decode(ctx, []byte(`value=35`))
	require.Error(t, err)

	// Metrics is not an object.
	_, err = Decode(ctx, []byte(`{"metrics":[1,2]}`))
	require.ErrorIs(t, err, ErrInvalidMetrics)
}

// TestDecode_InvalidTimestampKeepsMetrics ensures a broken timestamp does not cost the reading.
func TestDecode_InvalidTimestampKeepsMetrics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
	}{
		{name: "text", document: `{"timestamp":"yesterday","metrics":{"value":35}}`},
		{name: "boolean", document: `{"timestamp":true,"metrics":{"value":35}}`},
		{name: "beyond int64 milliseconds", document: `{"timestamp":1e300,"metrics":{"value":35}}`},
		{name: "below int64 milliseconds", document: `{"timestamp":-1e19,"metrics":{"value":35}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			core, logs := observer.New(zapcore.WarnLevel)
			ctx := logger.ToContext(context.Background(), zap.New(core).Sugar())

			msg, err := Decode(ctx, []byte(tt.document))
			require.NoError(t, err)
			require.Nil(t, msg.Timestamp)
			require.Equal(t, 35.0, msg.Metrics[domain.MetricValue])
			require.Equal(t, 1, logs.FilterMessage("Ignoring message timestamp").Len())
		})
	}
}

// TestDecodeTimestamp_Range checks the epoch millisecond bounds.
func TestDecodeTimestamp_Range(t *testing.T) {
	t.Parallel()

	_, err := decodeTimestamp(structpb.NewNumberValue(math.Inf(1)))
	require.ErrorIs(t, err, ErrInvalidTimestamp)

	_, err = decodeTimestamp(structpb.NewNumberValue(math.NaN()))
	require.ErrorIs(t, err, ErrInvalidTimestamp)

	ts, err := decodeTimestamp(structpb.NewNumberValue(-1000))
	require.NoError(t, err)
	require.Equal(t, int64(-1000), ts.UnixMilli())
}
