package led

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	domain "github.com/oshokin/alarm-led/internal/domain/alarm"
	"github.com/oshokin/alarm-led/internal/logger"
)

// recordingPublisher stores every report it accepts.
type recordingPublisher struct {
	// mu protects the fields below.
	mu sync.Mutex
	// messages are the accepted reports in publish order.
	messages []*domain.OutboundMessage
	// calls counts Publish invocations, failed ones included.
	calls int
	// publishFn overrides the default behavior when set.
	publishFn func(ctx context.Context, call int) error
}

// Publish records msg unless publishFn reports an error.
func (p *recordingPublisher) Publish(ctx context.Context, msg *domain.OutboundMessage) (string, error) {
	p.mu.Lock()
	p.calls++
	call := p.calls
	fn := p.publishFn
	p.mu.Unlock()

	if fn != nil {
		if err := fn(ctx, call); err != nil {
			return "", err
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.messages = append(p.messages, msg)

	return "message-id", nil
}

func (p *recordingPublisher) RegisterConnectionListener(domain.ConnectionListener)   {}
func (p *recordingPublisher) UnregisterConnectionListener(domain.ConnectionListener) {}
func (p *recordingPublisher) RegisterDeliveryListener(domain.DeliveryListener)       {}
func (p *recordingPublisher) UnregisterDeliveryListener(domain.DeliveryListener)     {}

// statuses returns the published alarm flags in order.
func (p *recordingPublisher) statuses() []bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	result := make([]bool, 0, len(p.messages))
	for _, msg := range p.messages {
		status, _ := msg.Status()
		result = append(result, status)
	}

	return result
}

// offsets returns report timestamps relative to start.
func (p *recordingPublisher) offsets(start time.Time) []time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	result := make([]time.Duration, 0, len(p.messages))
	for _, msg := range p.messages {
		result = append(result, msg.Timestamp.Sub(start))
	}

	return result
}

// callCount returns how many times Publish was invoked.
func (p *recordingPublisher) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.calls
}

// observedContext returns a context whose logger records entries for assertions.
func observedContext() (context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)

	return logger.ToContext(context.Background(), zap.New(core).Sugar()), logs
}

// thresholdProperties returns properties with the given threshold.
func thresholdProperties(threshold float64) map[string]any {
	return map[string]any{
		domain.PropertyThreshold: threshold,
	}
}

// reading returns an inbound message carrying the compared metric.
func reading(value any) *domain.InboundMessage {
	return &domain.InboundMessage{
		Metrics: map[string]any{
			domain.MetricValue: value,
		},
	}
}
