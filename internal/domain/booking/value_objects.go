package booking

import (
	"time"
)

// Period is the half-open rental window [start, end).
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if !start.Before(end) {
		return Period{}, ErrStartNotBeforeEnd
	}
	return Period{start: start, end: end}, nil
}

// ReconstructPeriod rehydrates a persisted period without re-running
// creation-time checks; stored bookings may legitimately lie in the past.
func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

// Overlaps reports whether two half-open windows intersect; back-to-back
// periods do not.
func (p Period) Overlaps(other Period) bool {
	return p.start.Before(other.end) && other.start.Before(p.end)
}
