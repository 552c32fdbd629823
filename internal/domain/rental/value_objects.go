package rental

import (
	"errors"
	"time"
)

var (
	ErrInvalidPeriod   = errors.New("start time must be before end time")
	ErrStartInPast     = errors.New("start time cannot be in the past")
	ErrActivationEarly = errors.New("cannot activate more than 4 hours before start time")
)

// ClockSkewTolerance is how far in the past a requested start time may lie
// before the booking is rejected, to absorb client/server clock drift.
const ClockSkewTolerance = 5 * time.Minute

// EarlyActivationWindow is how long before the scheduled start a rental may
// be activated on a different calendar day.
const EarlyActivationWindow = 4 * time.Hour

// Period is the requested rental interval, half-open: [start, end).
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if !start.Before(end) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: start, end: end}, nil
}

// NewBookingPeriod additionally rejects intervals starting in the past,
// beyond the clock-skew tolerance.
func NewBookingPeriod(start, end, now time.Time) (Period, error) {
	p, err := NewPeriod(start, end)
	if err != nil {
		return Period{}, err
	}
	if start.Before(now.Add(-ClockSkewTolerance)) {
		return Period{}, ErrStartInPast
	}
	return p, nil
}

func (p Period) Start() time.Time        { return p.start }
func (p Period) End() time.Time          { return p.end }
func (p Period) Duration() time.Duration { return p.end.Sub(p.start) }

// Overlaps uses half-open semantics: touching endpoints do not conflict.
func (p Period) Overlaps(other Period) bool {
	return p.end.After(other.start) && p.start.Before(other.end)
}

// ValidateActivationAt enforces the pickup window: activation on the same
// calendar day as the start is always allowed, otherwise it may happen at
// most EarlyActivationWindow before the start. Late activation is always
// allowed.
func (p Period) ValidateActivationAt(now time.Time) error {
	if sameCalendarDay(now, p.start) {
		return nil
	}
	if now.Before(p.start.Add(-EarlyActivationWindow)) {
		return ErrActivationEarly
	}
	return nil
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
