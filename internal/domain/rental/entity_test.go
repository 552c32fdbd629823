//go:build unit

package rental

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeRental(t *testing.T, start, end time.Time) *Rental {
	t.Helper()
	p, err := NewPeriod(start, end)
	require.NoError(t, err)
	return Reconstruct(
		uuid.New(), uuid.New(), uuid.New(), p, nil,
		StatusActive, d("200.00"), d("50.00"),
		DepositCollected, nil, decimal.Zero, 3,
		start.Add(-time.Hour), start.Add(-time.Hour),
	)
}

func TestNewRentalPricesBaseCharge(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	p, err := NewPeriod(now, now.Add(48*time.Hour))
	require.NoError(t, err)

	r := NewRental(uuid.New(), uuid.New(), p, d("100.00"), d("50.00"))

	assert.Equal(t, StatusPendingPayment, r.Status())
	assert.True(t, d("200.00").Equal(r.TotalAmount()))
	assert.True(t, d("50.00").Equal(r.DepositAmount()))
	assert.Equal(t, DepositNotCollected, r.DepositStatus())
	assert.True(t, r.OvertimeAmount().IsZero())
}

func TestRentalPaymentProgression(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	p, err := NewPeriod(now.Add(time.Hour), now.Add(49*time.Hour))
	require.NoError(t, err)
	r := NewRental(uuid.New(), uuid.New(), p, d("100.00"), d("50.00"))

	require.NoError(t, r.MarkDepositPaid(now))
	assert.Equal(t, StatusPendingRentalPayment, r.Status())
	assert.Equal(t, DepositCollected, r.DepositStatus())
	require.NotNil(t, r.DepositPaidAt())

	require.NoError(t, r.MarkRentalFeePaid())
	assert.Equal(t, StatusPaid, r.Status())

	require.NoError(t, r.Activate())
	assert.Equal(t, StatusActive, r.Status())

	// Replaying a settled payment event is rejected by the state table.
	assert.ErrorIs(t, r.MarkDepositPaid(now), ErrInvalidTransition)
}

func TestReturnOnTime(t *testing.T) {
	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	r := activeRental(t, start, end)

	fee, err := r.Return(end.Add(-time.Hour), d("100.00"))
	require.NoError(t, err)

	assert.True(t, fee.IsZero())
	assert.Equal(t, StatusFinished, r.Status())
	require.NotNil(t, r.ActualReturnTime())
	assert.True(t, d("200.00").Equal(r.TotalAmount()), "total unchanged on clean return")
}

func TestReturnWithinGrace(t *testing.T) {
	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	r := activeRental(t, start, end)

	fee, err := r.Return(end.Add(5*time.Hour), d("100.00"))
	require.NoError(t, err)

	assert.True(t, fee.IsZero())
	assert.Equal(t, StatusFinished, r.Status())
}

func TestReturnOverdue(t *testing.T) {
	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	r := activeRental(t, start, end)

	fee, err := r.Return(end.Add(10*time.Hour), d("100.00"))
	require.NoError(t, err)

	// 4 chargeable hours at 8.34 each
	assert.True(t, d("33.36").Equal(fee), "got %s", fee)
	assert.Equal(t, StatusPendingOvertimePayment, r.Status())
	assert.True(t, d("33.36").Equal(r.OvertimeAmount()))
	assert.True(t, d("233.36").Equal(r.TotalAmount()))

	require.NoError(t, r.MarkOvertimeSettled())
	assert.Equal(t, StatusFinished, r.Status())
}

func TestReturnTwice(t *testing.T) {
	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	r := activeRental(t, start, end)

	_, err := r.Return(end, d("100.00"))
	require.NoError(t, err)

	_, err = r.Return(end.Add(time.Hour), d("100.00"))
	assert.ErrorIs(t, err, ErrAlreadyReturned)
}

func TestForceFinishSkipsOvertime(t *testing.T) {
	start := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	r := activeRental(t, start, end)

	// Way overdue, but the administrative close never prices overtime.
	require.NoError(t, r.ForceFinish(end.Add(30*time.Hour)))
	assert.Equal(t, StatusFinished, r.Status())
	assert.True(t, r.OvertimeAmount().IsZero())
	assert.True(t, d("200.00").Equal(r.TotalAmount()))
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	p, err := NewPeriod(now.Add(time.Hour), now.Add(49*time.Hour))
	require.NoError(t, err)
	r := NewRental(uuid.New(), uuid.New(), p, d("100.00"), d("50.00"))

	require.NoError(t, r.Cancel())
	assert.Equal(t, StatusCancelled, r.Status())
	assert.ErrorIs(t, r.Cancel(), ErrInvalidTransition)
}

func TestIsOwnedBy(t *testing.T) {
	owner := uuid.New()
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	p, err := NewPeriod(now.Add(time.Hour), now.Add(49*time.Hour))
	require.NoError(t, err)
	r := NewRental(owner, uuid.New(), p, d("100.00"), d("50.00"))

	assert.True(t, r.IsOwnedBy(owner))
	assert.False(t, r.IsOwnedBy(uuid.New()))
}
