package errs

import (
	cr "github.com/cockroachdb/errors"
)

// New returns a stack-annotated error. Sentinel errors declared with New
// stay comparable through errors.Is.
func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark tags err so that errors.Is(result, markErr) holds while the original
// cause stays available for logging.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
