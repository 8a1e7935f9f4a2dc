package payload

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	domain "github.com/oshokin/alarm-led/internal/domain/alarm"
	"github.com/oshokin/alarm-led/internal/logger"
)

const (
	// fieldTimestamp is the document field carrying the message time.
	fieldTimestamp = "timestamp"
	// fieldMetrics is the document field carrying the metric map.
	fieldMetrics = "metrics"
)

var (
	// ErrNilMessage is returned when Encode receives nil.
	ErrNilMessage = errors.New("message is nil")
	// ErrInvalidMetrics is returned when "metrics" is present but is not an object.
	ErrInvalidMetrics = errors.New("metrics must be an object")
	// ErrInvalidTimestamp is returned when "timestamp" is neither RFC 3339 text nor epoch milliseconds.
	ErrInvalidTimestamp = errors.New("timestamp must be RFC 3339 text or epoch milliseconds")
)

// Encode renders an outbound message as a JSON document.
func Encode(msg *domain.OutboundMessage) ([]byte, error) {
	if msg == nil {
		return nil, ErrNilMessage
	}

	ts := timestamppb.New(msg.Timestamp)
	if err := ts.CheckValid(); err != nil {
		return nil, fmt.Errorf("encode timestamp: %w", err)
	}

	metrics := msg.Metrics
	if metrics == nil {
		metrics = map[string]any{}
	}

	document, err := structpb.NewStruct(map[string]any{
		fieldTimestamp: ts.AsTime().Format(time.RFC3339Nano),
		fieldMetrics:   metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("encode metrics: %w", err)
	}

	data, err := protojson.Marshal(document)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}

	return data, nil
}

// Decode parses a JSON document into an inbound message.
// A document without "metrics" yields an empty metric map. The timestamp is
// optional: an unreadable one is logged and left nil, the metrics are kept.
func Decode(ctx context.Context, data []byte) (*domain.InboundMessage, error) {
	var document structpb.Struct
	if err := protojson.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}

	fields := document.GetFields()
	msg := &domain.InboundMessage{
		Metrics: make(map[string]any),
	}

	if raw, ok := fields[fieldTimestamp]; ok {
		ts, err := decodeTimestamp(raw)
		if err != nil {
			logger.WarnKV(ctx, "Ignoring message timestamp", "error", err)
		}

		msg.Timestamp = ts
	}

	raw, ok := fields[fieldMetrics]
	if !ok {
		return msg, nil
	}

	metrics := raw.GetStructValue()
	if metrics == nil {
		return nil, ErrInvalidMetrics
	}

	for name, value := range metrics.GetFields() {
		msg.Metrics[name] = value.AsInterface()
	}

	return msg, nil
}

// decodeTimestamp accepts RFC 3339 strings and epoch milliseconds.
func decodeTimestamp(v *structpb.Value) (*time.Time, error) {
	switch kind := v.GetKind().(type) {
	case *structpb.Value_NullValue:
		return nil, nil //nolint:nilnil // A null timestamp is the same as an absent one.
	case *structpb.Value_StringValue:
		ts, err := time.Parse(time.RFC3339Nano, kind.StringValue)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTimestamp, err)
		}

		return &ts, nil
	case *structpb.Value_NumberValue:
		ms := kind.NumberValue
		// float64(math.MaxInt64) rounds up to 2^63, hence >=.
		if math.IsNaN(ms) || ms < math.MinInt64 || ms >= math.MaxInt64 {
			return nil, fmt.Errorf("%w: %v out of range", ErrInvalidTimestamp, ms)
		}

		ts := time.UnixMilli(int64(ms))

		return &ts, nil
	default:
		return nil, ErrInvalidTimestamp
	}
}
