//go:build unit

package rental

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflicts(t *testing.T) {
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	mk := func(startOffset, endOffset time.Duration) Period {
		p, err := NewPeriod(base.Add(startOffset), base.Add(endOffset))
		require.NoError(t, err)
		return p
	}
	requested := mk(0, 48*time.Hour)

	tests := []struct {
		name     string
		existing []Booking
		want     bool
	}{
		{"no bookings", nil, false},
		{
			"overlapping open booking",
			[]Booking{{Period: mk(24*time.Hour, 72*time.Hour), Status: StatusPaid}},
			true,
		},
		{
			"overlapping but cancelled",
			[]Booking{{Period: mk(24*time.Hour, 72*time.Hour), Status: StatusCancelled}},
			false,
		},
		{
			"overlapping but finished",
			[]Booking{{Period: mk(24*time.Hour, 72*time.Hour), Status: StatusFinished}},
			false,
		},
		{
			"overlapping but already returned",
			[]Booking{{Period: mk(24*time.Hour, 72*time.Hour), Status: StatusActive, Returned: true}},
			false,
		},
		{
			"pending payment still holds the slot",
			[]Booking{{Period: mk(-24*time.Hour, 24*time.Hour), Status: StatusPendingPayment}},
			true,
		},
		{
			"back to back does not conflict",
			[]Booking{{Period: mk(48*time.Hour, 96*time.Hour), Status: StatusActive}},
			false,
		},
		{
			"one clean miss one hit",
			[]Booking{
				{Period: mk(-48*time.Hour, -24*time.Hour), Status: StatusActive},
				{Period: mk(12*time.Hour, 36*time.Hour), Status: StatusActive},
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Conflicts(requested, tt.existing))
		})
	}
}
