package alarm

import "time"

const (
	// MetricValue is the inbound metric compared against the threshold.
	MetricValue = "value"
	// MetricStatus is the outbound metric carrying the alarm flag.
	MetricStatus = "status"
)

// InboundMessage is a sensor reading delivered by the subscriber.
type InboundMessage struct {
	// Timestamp is when the reading was taken, if the sender provided it.
	Timestamp *time.Time
	// Metrics maps metric names to their values.
	Metrics map[string]any
}

// Value returns the "value" metric and whether it is present.
func (m *InboundMessage) Value() (any, bool) {
	if m == nil || m.Metrics == nil {
		return nil, false
	}

	v, ok := m.Metrics[MetricValue]

	return v, ok
}

// OutboundMessage is a status report handed to the publisher.
type OutboundMessage struct {
	// Timestamp is when the report was built.
	Timestamp time.Time
	// Metrics maps metric names to their values.
	Metrics map[string]any
}

// NewStatusMessage builds a report carrying only the "status" metric.
func NewStatusMessage(timestamp time.Time, active bool) *OutboundMessage {
	return &OutboundMessage{
		Timestamp: timestamp,
		Metrics: map[string]any{
			MetricStatus: active,
		},
	}
}

// Status returns the "status" metric and whether it is a boolean.
func (m *OutboundMessage) Status() (bool, bool) {
	if m == nil {
		return false, false
	}

	v, ok := m.Metrics[MetricStatus].(bool)

	return v, ok
}

// Float converts numeric metric and property values to float64.
// Strings, booleans and other kinds are rejected.
func Float(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
