package led

import (
	domain "github.com/oshokin/alarm-led/internal/domain/alarm"
)

// SetPublisher binds the outbound channel and registers the handler for its
// connection and delivery events. A previously bound publisher is released.
// A nil publisher leaves the scheduler unbound.
func (s *Scheduler) SetPublisher(p domain.Publisher) {
	s.bindMu.Lock()
	defer s.bindMu.Unlock()

	if s.publisher != nil {
		s.releasePublisher()
	}

	if p == nil {
		return
	}

	s.publisher = p
	p.RegisterConnectionListener(s.handler)
	p.RegisterDeliveryListener(s.handler)
}

// UnsetPublisher releases p if it is the bound publisher.
// Ticks run without a publisher are skipped.
func (s *Scheduler) UnsetPublisher(p domain.Publisher) {
	s.bindMu.Lock()
	defer s.bindMu.Unlock()

	if s.publisher == nil || s.publisher != p {
		return
	}

	s.releasePublisher()
}

// Publisher returns the bound publisher or nil.
//
//nolint:ireturn // The binding is an interface by nature.
func (s *Scheduler) Publisher() domain.Publisher {
	s.bindMu.RLock()
	defer s.bindMu.RUnlock()

	return s.publisher
}

// SetSubscriber binds the inbound channel and registers the handler for its
// messages and connection events. A previously bound subscriber is released.
// A nil subscriber leaves the scheduler unbound.
func (s *Scheduler) SetSubscriber(sub domain.Subscriber) {
	s.bindMu.Lock()
	defer s.bindMu.Unlock()

	if s.subscriber != nil {
		s.releaseSubscriber()
	}

	if sub == nil {
		return
	}

	s.subscriber = sub
	sub.RegisterSubscriberListener(s.handler)
	sub.RegisterConnectionListener(s.handler)
}

// UnsetSubscriber releases sub if it is the bound subscriber.
func (s *Scheduler) UnsetSubscriber(sub domain.Subscriber) {
	s.bindMu.Lock()
	defer s.bindMu.Unlock()

	if s.subscriber == nil || s.subscriber != sub {
		return
	}

	s.releaseSubscriber()
}

// releasePublisher must be called with bindMu held.
func (s *Scheduler) releasePublisher() {
	s.publisher.UnregisterConnectionListener(s.handler)
	s.publisher.UnregisterDeliveryListener(s.handler)
	s.publisher = nil
}

// releaseSubscriber must be called with bindMu held.
func (s *Scheduler) releaseSubscriber() {
	s.subscriber.UnregisterSubscriberListener(s.handler)
	s.subscriber.UnregisterConnectionListener(s.handler)
	s.subscriber = nil
}
