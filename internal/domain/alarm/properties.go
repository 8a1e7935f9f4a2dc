package alarm

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// PropertyThreshold is the property holding the alarm threshold.
	PropertyThreshold = "threshold.value"
	// PropertyPublishRate is the property holding the publish cadence in seconds.
	PropertyPublishRate = "publish.rate"

	// DefaultPublishInterval is the cadence used when publish.rate is not set.
	DefaultPublishInterval = 5 * time.Second
)

var (
	// ErrThresholdMissing is returned when threshold.value is absent.
	ErrThresholdMissing = errors.New("threshold.value is required")
	// ErrThresholdInvalid is returned when threshold.value is not a finite number.
	ErrThresholdInvalid = errors.New("threshold.value must be a finite number")
	// ErrPublishRateInvalid is returned when publish.rate is not a positive whole number of seconds.
	ErrPublishRateInvalid = errors.New("publish.rate must be a positive number of seconds")
)

// Settings are the component properties the scheduler acts on.
type Settings struct {
	// Threshold is the value the "value" metric is compared against.
	Threshold float64
	// PublishInterval is the delay between two status publications.
	PublishInterval time.Duration
}

// ParseProperties extracts Settings from a component property map.
func ParseProperties(properties map[string]any) (*Settings, error) {
	raw, ok := properties[PropertyThreshold]
	if !ok || raw == nil {
		return nil, ErrThresholdMissing
	}

	threshold, ok := Float(raw)
	if !ok || math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrThresholdInvalid, raw)
	}

	settings := &Settings{
		Threshold:       threshold,
		PublishInterval: DefaultPublishInterval,
	}

	raw, ok = properties[PropertyPublishRate]
	if !ok || raw == nil {
		return settings, nil
	}

	rate, ok := Float(raw)
	if !ok || rate < 1 || rate != math.Trunc(rate) || rate > math.MaxInt32 {
		return nil, fmt.Errorf("%w: got %v", ErrPublishRateInvalid, raw)
	}

	settings.PublishInterval = time.Duration(rate) * time.Second

	return settings, nil
}
