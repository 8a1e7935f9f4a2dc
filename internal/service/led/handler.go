package led

import (
	"context"
	"fmt"

	domain "github.com/oshokin/alarm-led/internal/domain/alarm"
	"github.com/oshokin/alarm-led/internal/logger"
)

// Handler consumes inbound readings and transport lifecycle events.
// It implements the subscriber, connection and delivery listener interfaces.
type Handler struct {
	// state is the alarm latched by readings.
	state *domain.State
}

// NewHandler creates a handler feeding the provided state.
func NewHandler(state *domain.State) *Handler {
	return &Handler{
		state: state,
	}
}

// OnMessageArrived compares the "value" metric with the threshold.
// Messages without the metric are ignored, non-numeric values are logged and dropped.
func (h *Handler) OnMessageArrived(ctx context.Context, msg *domain.InboundMessage) {
	if msg == nil {
		return
	}

	if msg.Timestamp != nil {
		logger.DebugKV(ctx, "Message timestamp", "timestamp", msg.Timestamp.UnixMilli())
	}

	for name, value := range msg.Metrics {
		logger.DebugKV(ctx, "Message metric", "metric", name, "value", value)
	}

	raw, ok := msg.Value()
	if !ok {
		return
	}

	value, ok := domain.Float(raw)
	if !ok {
		logger.WarnKV(ctx, "Discarding non-numeric metric",
			"metric", domain.MetricValue, "value", fmt.Sprintf("%v", raw), "type", fmt.Sprintf("%T", raw))

		return
	}

	if h.state.Observe(value) {
		logger.InfoKV(ctx, "Threshold exceeded, alarm latched", "value", value)
	}
}

// OnConnectionEstablished logs the connection.
func (h *Handler) OnConnectionEstablished(ctx context.Context) {
	logger.Info(ctx, "Connection established")
}

// OnConnectionLost logs the loss. The alarm is left as it is.
func (h *Handler) OnConnectionLost(ctx context.Context, err error) {
	logger.WarnKV(ctx, "Connection lost", "error", err)
}

// OnDisconnected logs a requested disconnect.
func (h *Handler) OnDisconnected(ctx context.Context) {
	logger.Warn(ctx, "Disconnected")
}

// OnMessageConfirmed logs a delivery confirmation.
func (h *Handler) OnMessageConfirmed(ctx context.Context, messageID string) {
	logger.InfoKV(ctx, "Confirmed message", "message_id", messageID)
}
