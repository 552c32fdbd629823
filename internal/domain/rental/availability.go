package rental

// Booking is the slice of an existing rental that availability checks need:
// its interval, status, and whether the vehicle has come back.
type Booking struct {
	Period   Period
	Status   Status
	Returned bool
}

// Conflicts reports whether the requested period collides with any existing
// booking. Only open, unreturned bookings can hold an interval; intervals
// are half-open, so back-to-back bookings touching at an endpoint coexist.
func Conflicts(requested Period, existing []Booking) bool {
	for _, b := range existing {
		if b.Returned || !b.Status.Open() {
			continue
		}
		if requested.Overlaps(b.Period) {
			return true
		}
	}
	return false
}
