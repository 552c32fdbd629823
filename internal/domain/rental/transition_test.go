//go:build unit

package rental

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		event   Event
		want    Status
		wantErr bool
	}{
		{"deposit settles", StatusPendingPayment, EventDepositPaid, StatusPendingRentalPayment, false},
		{"cancel before deposit", StatusPendingPayment, EventCancel, StatusCancelled, false},
		{"rental fee settles", StatusPendingRentalPayment, EventRentalFeePaid, StatusPaid, false},
		{"cancel before rental fee", StatusPendingRentalPayment, EventCancel, StatusCancelled, false},
		{"activate paid rental", StatusPaid, EventActivate, StatusActive, false},
		{"no-show return from paid", StatusPaid, EventReturn, StatusFinished, false},
		{"no-show overdue from paid", StatusPaid, EventReturnOverdue, StatusPendingOvertimePayment, false},
		{"force finish paid rental", StatusPaid, EventForceFinish, StatusFinished, false},
		{"on-time return", StatusActive, EventReturn, StatusFinished, false},
		{"overdue return", StatusActive, EventReturnOverdue, StatusPendingOvertimePayment, false},
		{"force finish active rental", StatusActive, EventForceFinish, StatusFinished, false},
		{"cancel active rental", StatusActive, EventCancel, StatusCancelled, false},
		{"overtime settles", StatusPendingOvertimePayment, EventOvertimePaid, StatusFinished, false},

		{"cannot skip deposit", StatusPendingPayment, EventRentalFeePaid, "", true},
		{"cannot activate unpaid", StatusPendingPayment, EventActivate, "", true},
		{"cannot activate twice", StatusActive, EventActivate, "", true},
		{"cannot return before activation window", StatusPendingRentalPayment, EventReturn, "", true},
		{"finished is terminal", StatusFinished, EventCancel, "", true},
		{"cancelled is terminal", StatusCancelled, EventDepositPaid, "", true},
		{"finished rejects activation", StatusFinished, EventActivate, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.from, tt.event)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanApply(t *testing.T) {
	assert.True(t, CanApply(StatusPaid, EventActivate))
	assert.False(t, CanApply(StatusFinished, EventActivate))
	assert.False(t, CanApply(StatusCancelled, EventCancel))
}

func TestTerminalStatesHaveNoOutgoingTransitions(t *testing.T) {
	for _, s := range []Status{StatusFinished, StatusCancelled} {
		assert.Empty(t, transitions[s], "terminal status %s must not transition", s)
	}
}
