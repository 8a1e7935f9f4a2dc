package alarm

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestParseProperties covers required, optional and invalid property values.
func TestParseProperties(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		properties map[string]any
		want       *Settings
		wantErr    error
	}{
		{
			name:       "threshold only",
			properties: map[string]any{PropertyThreshold: 30.0},
			want:       &Settings{Threshold: 30, PublishInterval: DefaultPublishInterval},
		},
		{
			name:       "integer threshold and rate",
			properties: map[string]any{PropertyThreshold: 25, PropertyPublishRate: 10},
			want:       &Settings{Threshold: 25, PublishInterval: 10 * time.Second},
		},
		{
			name:       "float32 threshold",
			properties: map[string]any{PropertyThreshold: float32(12.5)},
			want:       &Settings{Threshold: 12.5, PublishInterval: DefaultPublishInterval},
		},
		{
			name:       "missing threshold",
			properties: map[string]any{PropertyPublishRate: 5},
			wantErr:    ErrThresholdMissing,
		},
		{
			name:       "nil properties",
			properties: nil,
			wantErr:    ErrThresholdMissing,
		},
		{
			name:       "string threshold",
			properties: map[string]any{PropertyThreshold: "30"},
			wantErr:    ErrThresholdInvalid,
		},
		{
			name:       "nan threshold",
			properties: map[string]any{PropertyThreshold: math.NaN()},
			wantErr:    ErrThresholdInvalid,
		},
		{
			name:       "zero rate",
			properties: map[string]any{PropertyThreshold: 30.0, PropertyPublishRate: 0},
			wantErr:    ErrPublishRateInvalid,
		},
		{
			name:       "fractional rate",
			properties: map[string]any{PropertyThreshold: 30.0, PropertyPublishRate: 2.5},
			wantErr:    ErrPublishRateInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseProperties(tt.properties)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
