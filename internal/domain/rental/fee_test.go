//go:build unit

package rental

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBaseCharge(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	daily := d("100.00")

	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{"single hour counts as one day", time.Hour, "100.00"},
		{"exactly one day", 24 * time.Hour, "100.00"},
		{"partial second day truncates", 36 * time.Hour, "100.00"},
		{"just under two days", 47 * time.Hour, "100.00"},
		{"exactly two days", 48 * time.Hour, "200.00"},
		{"three days", 72 * time.Hour, "300.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPeriod(start, start.Add(tt.duration))
			require.NoError(t, err)

			got := BaseCharge(p, daily)
			assert.True(t, d(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestOvertimeFee(t *testing.T) {
	end := time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)

	// daily 100.00 -> hourly base 4.17 (half-up), doubled to 8.34 per hour
	daily := d("100.00")

	tests := []struct {
		name    string
		overdue time.Duration
		want    string
	}{
		{"returned on time", 0, "0"},
		{"within grace", 5 * time.Hour, "0"},
		{"exactly at grace boundary", 6 * time.Hour, "0"},
		{"grace plus a minute still floors to six hours", 6*time.Hour + time.Minute, "0"},
		{"one chargeable hour", 7 * time.Hour, "8.34"},
		{"started hour rounds up", 7*time.Hour + 30*time.Minute, "16.68"},
		{"four chargeable hours", 10 * time.Hour, "33.36"},
		{"cap kicks in on a full overdue day", 30 * time.Hour, "150.00"},
		{"second overdue day raises the cap again", 31 * time.Hour, "208.50"},
		{"long overdue below the scaled cap", 55 * time.Hour, "408.66"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OvertimeFee(end, end.Add(tt.overdue), daily)
			assert.True(t, d(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestOvertimeFeeHigherDailyRate(t *testing.T) {
	// daily 240.00 -> hourly base 10.00, doubled to 20.00 per started hour
	end := time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)
	got := OvertimeFee(end, end.Add(8*time.Hour+30*time.Minute), d("240.00"))
	assert.True(t, d("60.00").Equal(got), "got %s", got)
}

func TestBaseChargeHigherDailyRate(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	p, err := NewPeriod(start, start.Add(48*time.Hour))
	require.NoError(t, err)
	got := BaseCharge(p, d("200.00"))
	assert.True(t, d("400.00").Equal(got), "got %s", got)
}

func TestOvertimeFeeEarlyReturn(t *testing.T) {
	end := time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)
	got := OvertimeFee(end, end.Add(-2*time.Hour), d("100.00"))
	assert.True(t, got.IsZero())
}

func TestOvertimeFeeNeverExceedsCap(t *testing.T) {
	end := time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)
	daily := d("80.00")
	cap := daily.Mul(d("1.5"))

	for overdueHours := 7; overdueHours <= 30; overdueHours++ {
		got := OvertimeFee(end, end.Add(time.Duration(overdueHours)*time.Hour), daily)
		assert.True(t, got.LessThanOrEqual(cap),
			"fee %s exceeds one-day cap %s at %dh overdue", got, cap, overdueHours)
	}
}

func TestOvertimeFeeMonotonic(t *testing.T) {
	end := time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC)
	daily := d("60.00")

	prev := decimal.Zero
	for overdueHours := 1; overdueHours <= 72; overdueHours++ {
		got := OvertimeFee(end, end.Add(time.Duration(overdueHours)*time.Hour), daily)
		assert.True(t, got.GreaterThanOrEqual(prev),
			"fee decreased from %s to %s at %dh overdue", prev, got, overdueHours)
		prev = got
	}
}
