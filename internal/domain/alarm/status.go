package alarm

import "time"

// Status describes the publish loop and the alarm it reports.
type Status struct {
	Snapshot

	// Running reports whether a publish generation is active.
	Running bool
	// Generation counts configurations applied since start.
	Generation uint64
	// PublishInterval is the cadence of the active generation.
	PublishInterval time.Duration
	// LastPublished is when a status report was last accepted by the publisher.
	LastPublished time.Time
}
