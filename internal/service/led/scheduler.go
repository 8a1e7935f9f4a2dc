package led

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	domain "github.com/oshokin/alarm-led/internal/domain/alarm"
	"github.com/oshokin/alarm-led/internal/logger"
)

// ErrSchedulerStopped is returned when a stopped scheduler is reconfigured.
var ErrSchedulerStopped = errors.New("scheduler is stopped")

// Scheduler republishes the alarm flag on a fixed cadence and applies
// configuration changes to the alarm state.
type Scheduler struct {
	// ctx is the base context of publish loops; it carries the logger only.
	ctx context.Context //nolint:containedctx // Loops outlive the calls that start them.
	// state is the alarm shared with the handler.
	state *domain.State
	// handler receives readings and transport events.
	handler *Handler
	// now stamps outgoing reports.
	now func() time.Time

	// mu protects the lifecycle fields below.
	mu sync.Mutex
	// cancel stops the running generation; nil while idle.
	cancel context.CancelFunc
	// interval is the cadence of the latest generation.
	interval time.Duration
	// stopped is set by Shutdown and never cleared.
	stopped bool
	// lastPublished is when the publisher last accepted a report.
	lastPublished time.Time

	// generation identifies the only generation allowed to publish.
	generation atomic.Uint64
	// worker serializes ticks across generations.
	worker sync.Mutex
	// loops tracks running publish loops.
	loops sync.WaitGroup

	// bindMu protects the collaborator bindings.
	bindMu sync.RWMutex
	// publisher receives status reports; nil while unbound.
	publisher domain.Publisher
	// subscriber delivers readings; nil while unbound.
	subscriber domain.Subscriber
}

// NewScheduler creates an idle scheduler with an inactive alarm.
func NewScheduler(ctx context.Context) *Scheduler {
	state := domain.NewState(0)

	return &Scheduler{
		ctx:      context.WithoutCancel(logger.WithName(ctx, "led")),
		state:    state,
		handler:  NewHandler(state),
		now:      time.Now,
		interval: domain.DefaultPublishInterval,
	}
}

// Handler returns the listener the transport should deliver events to.
func (s *Scheduler) Handler() *Handler {
	return s.handler
}

// Start activates the scheduler from component properties.
// The alarm is cleared. Invalid properties fail the activation.
func (s *Scheduler) Start(ctx context.Context, properties map[string]any) error {
	logger.Info(ctx, "Activating alarm")
	logProperties(ctx, properties)

	settings, err := domain.ParseProperties(properties)
	if err != nil {
		return fmt.Errorf("activate: %w", err)
	}

	if err = s.apply(ctx, settings, false); err != nil {
		return fmt.Errorf("activate: %w", err)
	}

	logger.Info(ctx, "Activating alarm... Done")

	return nil
}

// Update applies changed properties to a running scheduler.
// A latched alarm survives the update; only the threshold and cadence change.
func (s *Scheduler) Update(ctx context.Context, properties map[string]any) error {
	logProperties(ctx, properties)

	settings, err := domain.ParseProperties(properties)
	if err != nil {
		return fmt.Errorf("update: %w", err)
	}

	if err = s.apply(ctx, settings, true); err != nil {
		return fmt.Errorf("update: %w", err)
	}

	logger.Info(ctx, "Updated alarm... Done")

	return nil
}

// Stop deactivates the scheduler for good.
func (s *Scheduler) Stop() {
	s.Shutdown()
}

// Configure restarts the publish loop with a new threshold at the current cadence.
// With resubscribeOnly the latched alarm is kept; otherwise it is cleared.
// It does not wait for an in-flight tick; that tick is interrupted through its
// context and can no longer publish once the new generation has started.
func (s *Scheduler) Configure(ctx context.Context, threshold float64, resubscribeOnly bool) error {
	s.mu.Lock()
	interval := s.interval
	s.mu.Unlock()

	settings := &domain.Settings{
		Threshold:       threshold,
		PublishInterval: interval,
	}

	return s.apply(ctx, settings, resubscribeOnly)
}

// Shutdown cancels the running generation and keeps the scheduler idle.
// It is safe to call during a tick and more than once; it never blocks on a tick.
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	s.stopped = true
	s.generation.Add(1)

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	logger.Info(s.ctx, "Publish loop stopped")
}

// Wait blocks until every publish loop has returned.
func (s *Scheduler) Wait() {
	s.loops.Wait()
}

// Status reports the alarm together with the publish loop state.
func (s *Scheduler) Status(context.Context) domain.Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.Status{
		Snapshot:        s.state.Snapshot(),
		Running:         s.cancel != nil,
		Generation:      s.generation.Load(),
		PublishInterval: s.interval,
		LastPublished:   s.lastPublished,
	}
}

// apply cancels the current generation and starts the next one.
func (s *Scheduler) apply(ctx context.Context, settings *domain.Settings, resubscribeOnly bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return ErrSchedulerStopped
	}

	if s.cancel != nil {
		s.cancel()
	}

	// From here on ticks of the previous generation are stale.
	gen := s.generation.Add(1)

	if resubscribeOnly {
		s.state.SetThreshold(settings.Threshold)
	} else {
		s.state.Reset(settings.Threshold)
	}

	s.interval = settings.PublishInterval

	loopCtx, cancel := context.WithCancel(logger.WithKV(s.ctx, "generation", gen))
	s.cancel = cancel

	s.loops.Go(func() {
		s.run(loopCtx, gen, settings.PublishInterval)
	})

	logger.InfoKV(ctx, "Publish loop configured",
		"generation", gen,
		"threshold", settings.Threshold,
		"interval", settings.PublishInterval.String(),
		"alarm_reset", !resubscribeOnly,
	)

	return nil
}

// run ticks immediately and then on every interval until ctx is canceled.
func (s *Scheduler) run(ctx context.Context, gen uint64, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		s.tick(ctx, gen)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// tick publishes once if gen is still the current generation.
func (s *Scheduler) tick(ctx context.Context, gen uint64) {
	s.worker.Lock()
	defer s.worker.Unlock()

	if ctx.Err() != nil || s.generation.Load() != gen {
		return
	}

	s.publish(ctx)
}

// publish sends the current alarm flag. Failures are logged; the next tick retries.
func (s *Scheduler) publish(ctx context.Context) {
	publisher := s.Publisher()
	if publisher == nil {
		logger.Info(ctx, "No publisher bound, cannot publish status")

		return
	}

	snapshot := s.state.Snapshot()
	msg := domain.NewStatusMessage(s.now(), snapshot.Active)

	defer func() {
		if r := recover(); r != nil {
			logger.ErrorKV(ctx, "Publisher panicked", "status", snapshot.Active, "panic", r)
		}
	}()

	messageID, err := publisher.Publish(ctx, msg)
	if err != nil {
		logger.ErrorKV(ctx, "Cannot publish message", "status", snapshot.Active, "error", err)

		return
	}

	s.mu.Lock()
	s.lastPublished = msg.Timestamp
	s.mu.Unlock()

	logger.InfoKV(ctx, "Published message",
		"message_id", messageID,
		"status", snapshot.Active,
		"threshold", snapshot.Threshold,
	)
}

// logProperties writes every property in key order.
func logProperties(ctx context.Context, properties map[string]any) {
	for _, key := range slices.Sorted(maps.Keys(properties)) {
		logger.InfoKV(ctx, "Property", "key", key, "value", properties[key])
	}
}
