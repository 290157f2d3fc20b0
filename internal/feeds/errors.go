package feeds

import (
	"errors"
	"fmt"
)

// ErrFeedUnavailable is returned when a decorator has no usable inner feed.
var ErrFeedUnavailable = errors.New("feed unavailable")

// TransientError marks a feed failure (network error, non-2xx response,
// malformed payload) that a caller-initiated refresh may clear. Resolvers
// treat it like an absent value for rendering but track it separately.
type TransientError struct {
	Feed string
	Err  error
}

func (e *TransientError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: transient feed failure", e.Feed)
	}
	return fmt.Sprintf("%s: %v", e.Feed, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// Transient wraps err as a TransientError attributed to the named feed.
// A nil err passes through as nil.
func Transient(feed string, err error) error {
	if err == nil {
		return nil
	}
	return &TransientError{Feed: feed, Err: err}
}

// AsTransientError attempts to unwrap an error into a TransientError.
func AsTransientError(err error) (*TransientError, bool) {
	var tErr *TransientError
	if errors.As(err, &tErr) {
		return tErr, true
	}
	return nil, false
}

// IsTransient reports whether err is (or wraps) a TransientError.
func IsTransient(err error) bool {
	_, ok := AsTransientError(err)
	return ok
}
