package alarm

import "sync"

// State is the latched alarm flag together with the threshold in effect.
// Both fields are guarded as one unit, so readers never see a flag from one
// configuration paired with a threshold from another.
type State struct {
	// mu protects active and threshold.
	mu sync.Mutex
	// active is true once an observed value exceeded the threshold since the last reset.
	active bool
	// threshold is the value observations are compared against.
	threshold float64
}

// Snapshot is a consistent copy of the alarm state.
type Snapshot struct {
	// Active reports whether the alarm is latched.
	Active bool
	// Threshold is the comparison value at the time of the snapshot.
	Threshold float64
}

// NewState creates an inactive state with the provided threshold.
func NewState(threshold float64) *State {
	return &State{
		threshold: threshold,
	}
}

// Observe latches the alarm when value exceeds the threshold.
// It never clears the flag and reports whether this call latched it.
func (s *State) Observe(value float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Written as a negated comparison so NaN never latches.
	if s.active || !(value > s.threshold) {
		return false
	}

	s.active = true

	return true
}

// Reset clears the alarm and replaces the threshold.
func (s *State) Reset(threshold float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = false
	s.threshold = threshold
}

// SetThreshold replaces the threshold and keeps the alarm latched if it was.
func (s *State) SetThreshold(threshold float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.threshold = threshold
}

// Snapshot returns the current state without mutating it.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Active:    s.active,
		Threshold: s.threshold,
	}
}
