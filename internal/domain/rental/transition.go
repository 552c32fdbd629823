package rental

import "errors"

var ErrInvalidTransition = errors.New("invalid rental status transition")

// Event drives the rental lifecycle. Payment-settlement events arrive from
// the payment reconciler; the rest from user or admin actions.
type Event string

const (
	EventDepositPaid   Event = "DEPOSIT_PAID"
	EventRentalFeePaid Event = "RENTAL_FEE_PAID"
	EventActivate      Event = "ACTIVATE"
	EventReturn        Event = "RETURN"
	EventReturnOverdue Event = "RETURN_OVERDUE"
	EventOvertimePaid  Event = "OVERTIME_PAID"
	EventForceFinish   Event = "FORCE_FINISH"
	EventCancel        Event = "CANCEL"
)

var transitions = map[Status]map[Event]Status{
	StatusPendingPayment: {
		EventDepositPaid: StatusPendingRentalPayment,
		EventCancel:      StatusCancelled,
	},
	StatusPendingRentalPayment: {
		EventRentalFeePaid: StatusPaid,
		EventCancel:        StatusCancelled,
	},
	StatusPaid: {
		EventActivate:      StatusActive,
		EventReturn:        StatusFinished,
		EventReturnOverdue: StatusPendingOvertimePayment,
		EventForceFinish:   StatusFinished,
		EventCancel:        StatusCancelled,
	},
	StatusActive: {
		EventReturn:        StatusFinished,
		EventReturnOverdue: StatusPendingOvertimePayment,
		EventForceFinish:   StatusFinished,
		EventCancel:        StatusCancelled,
	},
	StatusPendingOvertimePayment: {
		EventOvertimePaid: StatusFinished,
		EventCancel:       StatusCancelled,
	},
}

// Transition returns the status reached by applying ev in status s. It is a
// pure lookup: callers are responsible for any preconditions beyond the
// status itself (ownership, timing windows, vehicle state) and for the side
// effects the transition implies.
func Transition(s Status, ev Event) (Status, error) {
	next, ok := transitions[s][ev]
	if !ok {
		return "", ErrInvalidTransition
	}
	return next, nil
}

// CanApply reports whether ev is legal in status s.
func CanApply(s Status, ev Event) bool {
	_, ok := transitions[s][ev]
	return ok
}
