//go:build unit

package rental

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookingPeriod(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{"future interval", now.Add(time.Hour), now.Add(25 * time.Hour), nil},
		{"start equals end", now.Add(time.Hour), now.Add(time.Hour), ErrInvalidPeriod},
		{"start after end", now.Add(2 * time.Hour), now.Add(time.Hour), ErrInvalidPeriod},
		{"start slightly in the past within skew", now.Add(-4 * time.Minute), now.Add(time.Hour), nil},
		{"start beyond skew tolerance", now.Add(-6 * time.Minute), now.Add(time.Hour), ErrStartInPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBookingPeriod(tt.start, tt.end, now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestPeriodOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	mk := func(startOffset, endOffset time.Duration) Period {
		p, err := NewPeriod(base.Add(startOffset), base.Add(endOffset))
		require.NoError(t, err)
		return p
	}

	tests := []struct {
		name string
		a    Period
		b    Period
		want bool
	}{
		{"identical", mk(0, 24*time.Hour), mk(0, 24*time.Hour), true},
		{"contained", mk(0, 24*time.Hour), mk(2*time.Hour, 4*time.Hour), true},
		{"partial front", mk(0, 24*time.Hour), mk(-2*time.Hour, 2*time.Hour), true},
		{"partial back", mk(0, 24*time.Hour), mk(23*time.Hour, 30*time.Hour), true},
		{"back to back after", mk(0, 24*time.Hour), mk(24*time.Hour, 48*time.Hour), false},
		{"back to back before", mk(0, 24*time.Hour), mk(-24*time.Hour, 0), false},
		{"disjoint", mk(0, 24*time.Hour), mk(48*time.Hour, 72*time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestValidateActivationAt(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	p, err := NewPeriod(start, start.Add(48*time.Hour))
	require.NoError(t, err)

	tests := []struct {
		name    string
		now     time.Time
		wantErr error
	}{
		{"same calendar day well before start", time.Date(2026, 3, 10, 0, 30, 0, 0, time.UTC), nil},
		{"same day at window boundary", start.Add(-EarlyActivationWindow), nil},
		{"previous day beyond window", time.Date(2026, 3, 9, 22, 0, 0, 0, time.UTC), ErrActivationEarly},
		{"days ahead of start", start.Add(-72 * time.Hour), ErrActivationEarly},
		{"after start", start.Add(2 * time.Hour), nil},
		{"long after start", start.Add(30 * time.Hour), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.ValidateActivationAt(tt.now)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateActivationAtCrossDayWindow(t *testing.T) {
	// Start just after midnight: the pre-start window reaches into the
	// previous calendar day.
	start := time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC)
	p, err := NewPeriod(start, start.Add(24*time.Hour))
	require.NoError(t, err)

	assert.NoError(t, p.ValidateActivationAt(time.Date(2026, 3, 9, 22, 0, 0, 0, time.UTC)))
	assert.ErrorIs(t, p.ValidateActivationAt(time.Date(2026, 3, 9, 20, 0, 0, 0, time.UTC)), ErrActivationEarly)
}
