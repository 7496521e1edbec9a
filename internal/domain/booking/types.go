package booking

import "shareit/internal/pkg/errs"

type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	// StatusCanceled is declared for booker-initiated cancellation but no
	// operation transitions into it yet.
	StatusCanceled Status = "canceled"
)

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCanceled
}

// Bucket is a named temporal/status filter applied when listing bookings.
type Bucket string

const (
	BucketAll      Bucket = "ALL"
	BucketCurrent  Bucket = "CURRENT"
	BucketFuture   Bucket = "FUTURE"
	BucketPast     Bucket = "PAST"
	BucketWaiting  Bucket = "WAITING"
	BucketRejected Bucket = "REJECTED"
)

var ErrUnknownBucket = errs.New("unknown booking state filter")

// ParseBucket rejects unrecognized input instead of defaulting silently.
// An empty string means no filter was requested and maps to ALL.
func ParseBucket(s string) (Bucket, error) {
	if s == "" {
		return BucketAll, nil
	}
	switch Bucket(s) {
	case BucketAll, BucketCurrent, BucketFuture, BucketPast, BucketWaiting, BucketRejected:
		return Bucket(s), nil
	}
	return "", errs.Mark(errs.Newf("unknown state: %s", s), ErrUnknownBucket)
}
