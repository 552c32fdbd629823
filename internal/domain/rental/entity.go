package rental

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotOwner        = errors.New("rental does not belong to this user")
	ErrAlreadyReturned = errors.New("rental has already been returned")
)

// Rental is the booking aggregate. All mutation goes through the event
// methods below, each of which consults the transition table; actualReturnTime
// is set exactly once and never cleared.
type Rental struct {
	id               uuid.UUID
	userID           uuid.UUID
	vehicleID        uuid.UUID
	period           Period
	actualReturnTime *time.Time
	status           Status
	totalAmount      decimal.Decimal
	depositAmount    decimal.Decimal
	depositStatus    DepositStatus
	depositPaidAt    *time.Time
	overtimeAmount   decimal.Decimal
	version          int32
	createdAt        time.Time
	updatedAt        time.Time
}

// NewRental books the given period at the vehicle's daily price. The rental
// starts in PENDING_PAYMENT awaiting the deposit checkout.
func NewRental(userID, vehicleID uuid.UUID, period Period, dailyPrice, depositAmount decimal.Decimal) *Rental {
	return &Rental{
		id:             uuid.New(),
		userID:         userID,
		vehicleID:      vehicleID,
		period:         period,
		status:         StatusPendingPayment,
		totalAmount:    BaseCharge(period, dailyPrice),
		depositAmount:  depositAmount,
		depositStatus:  DepositNotCollected,
		overtimeAmount: decimal.Zero,
	}
}

func Reconstruct(
	id, userID, vehicleID uuid.UUID,
	period Period,
	actualReturnTime *time.Time,
	status Status,
	totalAmount, depositAmount decimal.Decimal,
	depositStatus DepositStatus,
	depositPaidAt *time.Time,
	overtimeAmount decimal.Decimal,
	version int32,
	createdAt, updatedAt time.Time,
) *Rental {
	return &Rental{
		id:               id,
		userID:           userID,
		vehicleID:        vehicleID,
		period:           period,
		actualReturnTime: actualReturnTime,
		status:           status,
		totalAmount:      totalAmount,
		depositAmount:    depositAmount,
		depositStatus:    depositStatus,
		depositPaidAt:    depositPaidAt,
		overtimeAmount:   overtimeAmount,
		version:          version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (r *Rental) ID() uuid.UUID                   { return r.id }
func (r *Rental) UserID() uuid.UUID               { return r.userID }
func (r *Rental) VehicleID() uuid.UUID            { return r.vehicleID }
func (r *Rental) Period() Period                  { return r.period }
func (r *Rental) ActualReturnTime() *time.Time    { return r.actualReturnTime }
func (r *Rental) Status() Status                  { return r.status }
func (r *Rental) TotalAmount() decimal.Decimal    { return r.totalAmount }
func (r *Rental) DepositAmount() decimal.Decimal  { return r.depositAmount }
func (r *Rental) DepositStatus() DepositStatus    { return r.depositStatus }
func (r *Rental) DepositPaidAt() *time.Time       { return r.depositPaidAt }
func (r *Rental) OvertimeAmount() decimal.Decimal { return r.overtimeAmount }
func (r *Rental) Version() int32                  { return r.version }
func (r *Rental) CreatedAt() time.Time            { return r.createdAt }
func (r *Rental) UpdatedAt() time.Time            { return r.updatedAt }

func (r *Rental) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// MarkDepositPaid records a settled deposit payment and advances the rental
// toward the rental-fee checkout.
func (r *Rental) MarkDepositPaid(now time.Time) error {
	next, err := Transition(r.status, EventDepositPaid)
	if err != nil {
		return err
	}
	r.status = next
	r.depositStatus = DepositCollected
	r.depositPaidAt = &now
	return nil
}

// MarkRentalFeePaid records a settled rental-fee payment.
func (r *Rental) MarkRentalFeePaid() error {
	next, err := Transition(r.status, EventRentalFeePaid)
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

// MarkOvertimeSettled records a settled overtime payment, closing the rental.
func (r *Rental) MarkOvertimeSettled() error {
	next, err := Transition(r.status, EventOvertimePaid)
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

// Activate hands the vehicle over. Timing-window and vehicle-status
// preconditions are enforced by the caller, which also flips the vehicle to
// RENTED in the same transaction.
func (r *Rental) Activate() error {
	next, err := Transition(r.status, EventActivate)
	if err != nil {
		return err
	}
	r.status = next
	return nil
}

// Return records the vehicle coming back at now and prices any overtime at
// the given daily rate. An overdue return beyond the grace period leaves the
// rental awaiting an overtime payment; otherwise it is finished outright.
// The returned fee is what the caller owes on top of the original total.
func (r *Rental) Return(now time.Time, dailyPrice decimal.Decimal) (decimal.Decimal, error) {
	if r.actualReturnTime != nil {
		return decimal.Zero, ErrAlreadyReturned
	}

	fee := OvertimeFee(r.period.End(), now, dailyPrice)

	ev := EventReturn
	if fee.IsPositive() {
		ev = EventReturnOverdue
	}
	next, err := Transition(r.status, ev)
	if err != nil {
		return decimal.Zero, err
	}

	r.status = next
	r.actualReturnTime = &now
	if fee.IsPositive() {
		r.overtimeAmount = fee
		r.totalAmount = r.totalAmount.Add(fee)
	}
	return fee, nil
}

// ForceFinish is the administrative override: it closes the rental at now
// without computing overtime.
func (r *Rental) ForceFinish(now time.Time) error {
	if r.actualReturnTime != nil {
		return ErrAlreadyReturned
	}
	next, err := Transition(r.status, EventForceFinish)
	if err != nil {
		return err
	}
	r.status = next
	r.actualReturnTime = &now
	return nil
}

// Cancel abandons the rental from any non-terminal state.
func (r *Rental) Cancel() error {
	next, err := Transition(r.status, EventCancel)
	if err != nil {
		return err
	}
	r.status = next
	return nil
}
