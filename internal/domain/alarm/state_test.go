package alarm

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestState_ObserveLatches verifies that only values above the threshold latch the alarm
// and that nothing but Reset clears it.
func TestState_ObserveLatches(t *testing.T) {
	t.Parallel()

	s := NewState(30)
	require.False(t, s.Snapshot().Active)

	for _, v := range []float64{10, 20, 29.9, 30, math.NaN()} {
		require.False(t, s.Observe(v), v)
	}

	require.False(t, s.Snapshot().Active)

	require.True(t, s.Observe(35))
	require.True(t, s.Snapshot().Active)

	// Already latched, lower values do not clear it.
	require.False(t, s.Observe(35))
	require.False(t, s.Observe(-100))
	require.True(t, s.Snapshot().Active)
}

// TestState_Reset checks that Reset clears the flag and the new threshold is used afterwards.
func TestState_Reset(t *testing.T) {
	t.Parallel()

	s := NewState(30)
	s.Observe(35)

	s.Reset(50)

	snapshot := s.Snapshot()
	require.False(t, snapshot.Active)
	require.Equal(t, 50.0, snapshot.Threshold)

	s.Observe(40)
	require.False(t, s.Snapshot().Active)

	s.Observe(50.1)
	require.True(t, s.Snapshot().Active)
}

// TestState_SetThresholdKeepsLatch ensures a threshold edit does not clear a latched alarm.
func TestState_SetThresholdKeepsLatch(t *testing.T) {
	t.Parallel()

	s := NewState(30)
	s.Observe(35)

	s.SetThreshold(50)

	require.Equal(t, Snapshot{Active: true, Threshold: 50}, s.Snapshot())
}

// TestState_ConcurrentAccess exercises Observe, Reset and Snapshot from many goroutines.
// A snapshot must never pair an active flag with a threshold no observed value exceeded.
func TestState_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	const (
		low  = 1000.0
		high = 10.0
	)

	s := NewState(low)

	var wg sync.WaitGroup

	for range 8 {
		wg.Go(func() {
			for range 1000 {
				// Exceeds only the high threshold.
				s.Observe(500)
			}
		})
	}

	wg.Go(func() {
		for i := range 1000 {
			if i%2 == 0 {
				s.Reset(low)
			} else {
				s.Reset(high)
			}
		}
	})

	wg.Go(func() {
		for range 1000 {
			snapshot := s.Snapshot()
			if snapshot.Active && snapshot.Threshold != high {
				t.Errorf("torn snapshot: active with threshold %v", snapshot.Threshold)
			}
		}
	})

	wg.Wait()
}
