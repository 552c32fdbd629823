package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("payment amount must be positive")

// Payment records one checkout attempt against a rental. It is created
// PENDING before the provider session exists; the session id is attached once
// the provider accepts, and only the reconciliation path moves it onward.
type Payment struct {
	id              uuid.UUID
	rentalID        uuid.UUID
	userID          uuid.UUID
	amount          decimal.Decimal
	paymentType     Type
	status          Status
	stripeSessionID *string
	transactionID   *string
	paidAt          *time.Time
	description     string
	createdAt       time.Time
	updatedAt       time.Time
}

func NewPayment(rentalID, userID uuid.UUID, amount decimal.Decimal, paymentType Type, description string) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if !paymentType.IsValid() {
		return nil, ErrInvalidType
	}

	return &Payment{
		id:          uuid.New(),
		rentalID:    rentalID,
		userID:      userID,
		amount:      amount,
		paymentType: paymentType,
		status:      StatusPending,
		description: description,
	}, nil
}

func Reconstruct(
	id, rentalID, userID uuid.UUID,
	amount decimal.Decimal,
	paymentType Type,
	status Status,
	stripeSessionID, transactionID *string,
	paidAt *time.Time,
	description string,
	createdAt, updatedAt time.Time,
) *Payment {
	return &Payment{
		id:              id,
		rentalID:        rentalID,
		userID:          userID,
		amount:          amount,
		paymentType:     paymentType,
		status:          status,
		stripeSessionID: stripeSessionID,
		transactionID:   transactionID,
		paidAt:          paidAt,
		description:     description,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (p *Payment) ID() uuid.UUID            { return p.id }
func (p *Payment) RentalID() uuid.UUID      { return p.rentalID }
func (p *Payment) UserID() uuid.UUID        { return p.userID }
func (p *Payment) Amount() decimal.Decimal  { return p.amount }
func (p *Payment) PaymentType() Type        { return p.paymentType }
func (p *Payment) Status() Status           { return p.status }
func (p *Payment) StripeSessionID() *string { return p.stripeSessionID }
func (p *Payment) TransactionID() *string   { return p.transactionID }
func (p *Payment) PaidAt() *time.Time       { return p.paidAt }
func (p *Payment) Description() string      { return p.description }
func (p *Payment) CreatedAt() time.Time     { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time     { return p.updatedAt }

func (p *Payment) IsSettled() bool {
	return p.status == StatusSuccess
}

// AttachSession stores the provider's session id once the checkout session
// has been created.
func (p *Payment) AttachSession(sessionID string) {
	p.stripeSessionID = &sessionID
}

// MarkSuccess settles the payment. Settling an already-successful payment is
// a replay and must be treated as a no-op by the caller, not routed here.
func (p *Payment) MarkSuccess(transactionID string, now time.Time) error {
	if !p.status.CanTransitionTo(StatusSuccess) {
		return ErrInvalidTransition
	}
	p.status = StatusSuccess
	p.transactionID = &transactionID
	p.paidAt = &now
	return nil
}

func (p *Payment) MarkFailed() error {
	if !p.status.CanTransitionTo(StatusFailed) {
		return ErrInvalidTransition
	}
	p.status = StatusFailed
	return nil
}

func (p *Payment) MarkRefunded() error {
	if !p.status.CanTransitionTo(StatusRefunded) {
		return ErrInvalidTransition
	}
	p.status = StatusRefunded
	return nil
}
