package rental

import "errors"

var (
	ErrInvalidStatus        = errors.New("invalid rental status")
	ErrInvalidDepositStatus = errors.New("invalid deposit status")
)

// Status values are ordered: apart from the lateral exit to StatusCancelled,
// a rental only ever moves to a status with a higher ordinal.
type Status string

const (
	StatusPendingPayment         Status = "PENDING_PAYMENT"
	StatusPendingRentalPayment   Status = "PENDING_RENTAL_PAYMENT"
	StatusPaid                   Status = "PAID"
	StatusActive                 Status = "ACTIVE"
	StatusPendingOvertimePayment Status = "PENDING_OVERTIME_PAYMENT"
	StatusFinished               Status = "FINISHED"
	StatusCancelled              Status = "CANCELLED"
)

var statusOrdinal = map[Status]int{
	StatusPendingPayment:         0,
	StatusPendingRentalPayment:   1,
	StatusPaid:                   2,
	StatusActive:                 3,
	StatusPendingOvertimePayment: 4,
	StatusFinished:               5,
	StatusCancelled:              6,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := statusOrdinal[s]
	return ok
}

func (s Status) IsTerminal() bool {
	return s == StatusFinished || s == StatusCancelled
}

// Ordinal reports the position of s in the lifecycle; CANCELLED sorts last.
func (s Status) Ordinal() int {
	return statusOrdinal[s]
}

// Open reports whether the rental still holds (or may come to hold) the
// vehicle for its interval, which is what availability checks care about.
func (s Status) Open() bool {
	switch s {
	case StatusPendingPayment, StatusPendingRentalPayment, StatusPaid, StatusActive:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type DepositStatus string

const (
	DepositNotCollected         DepositStatus = "NOT_COLLECTED"
	DepositCollected            DepositStatus = "COLLECTED"
	DepositReturned             DepositStatus = "RETURNED"
	DepositConfiscated          DepositStatus = "CONFISCATED"
	DepositPartiallyConfiscated DepositStatus = "PARTIALLY_CONFISCATED"
)

func (s DepositStatus) String() string {
	return string(s)
}

func (s DepositStatus) IsValid() bool {
	switch s {
	case DepositNotCollected, DepositCollected, DepositReturned,
		DepositConfiscated, DepositPartiallyConfiscated:
		return true
	default:
		return false
	}
}

func NewDepositStatus(s string) (DepositStatus, error) {
	status := DepositStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidDepositStatus
	}
	return status, nil
}
