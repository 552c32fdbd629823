//go:build unit

package payment

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	tests := []struct {
		name        string
		amount      decimal.Decimal
		paymentType Type
		wantErr     error
	}{
		{"valid deposit", decimal.RequireFromString("50.00"), TypeDeposit, nil},
		{"valid rental", decimal.RequireFromString("200.00"), TypeRental, nil},
		{"zero amount", decimal.Zero, TypeRental, ErrInvalidAmount},
		{"negative amount", decimal.RequireFromString("-1.00"), TypeRental, ErrInvalidAmount},
		{"unknown type", decimal.RequireFromString("10.00"), Type("TIP"), ErrInvalidType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPayment(uuid.New(), uuid.New(), tt.amount, tt.paymentType, "test checkout")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, StatusPending, p.Status())
			assert.Nil(t, p.StripeSessionID())
			assert.Nil(t, p.TransactionID())
			assert.False(t, p.IsSettled())
		})
	}
}

func TestMarkSuccess(t *testing.T) {
	p, err := NewPayment(uuid.New(), uuid.New(), decimal.RequireFromString("50.00"), TypeDeposit, "deposit")
	require.NoError(t, err)

	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, p.MarkSuccess("pi_123", now))

	assert.Equal(t, StatusSuccess, p.Status())
	assert.True(t, p.IsSettled())
	require.NotNil(t, p.TransactionID())
	assert.Equal(t, "pi_123", *p.TransactionID())
	require.NotNil(t, p.PaidAt())
	assert.Equal(t, now, *p.PaidAt())

	// Webhook replays must not settle twice.
	assert.ErrorIs(t, p.MarkSuccess("pi_123", now), ErrInvalidTransition)
}

func TestMarkFailed(t *testing.T) {
	p, err := NewPayment(uuid.New(), uuid.New(), decimal.RequireFromString("50.00"), TypeDeposit, "deposit")
	require.NoError(t, err)

	require.NoError(t, p.MarkFailed())
	assert.Equal(t, StatusFailed, p.Status())

	// Failed is terminal.
	assert.ErrorIs(t, p.MarkSuccess("pi_123", time.Now()), ErrInvalidTransition)
	assert.ErrorIs(t, p.MarkRefunded(), ErrInvalidTransition)
}

func TestMarkRefunded(t *testing.T) {
	p, err := NewPayment(uuid.New(), uuid.New(), decimal.RequireFromString("200.00"), TypeRental, "rental fee")
	require.NoError(t, err)

	// Only a settled payment can be refunded.
	assert.ErrorIs(t, p.MarkRefunded(), ErrInvalidTransition)

	require.NoError(t, p.MarkSuccess("pi_456", time.Now()))
	require.NoError(t, p.MarkRefunded())
	assert.Equal(t, StatusRefunded, p.Status())
}

func TestAttachSession(t *testing.T) {
	p, err := NewPayment(uuid.New(), uuid.New(), decimal.RequireFromString("50.00"), TypeDeposit, "deposit")
	require.NoError(t, err)

	p.AttachSession("cs_test_abc")
	require.NotNil(t, p.StripeSessionID())
	assert.Equal(t, "cs_test_abc", *p.StripeSessionID())
}

func TestStatusCanTransitionTo(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusSuccess))
	assert.True(t, StatusPending.CanTransitionTo(StatusFailed))
	assert.False(t, StatusPending.CanTransitionTo(StatusRefunded))
	assert.True(t, StatusSuccess.CanTransitionTo(StatusRefunded))
	assert.False(t, StatusSuccess.CanTransitionTo(StatusSuccess))
	assert.False(t, StatusFailed.CanTransitionTo(StatusSuccess))
	assert.False(t, StatusRefunded.CanTransitionTo(StatusSuccess))
}
