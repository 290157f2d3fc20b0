package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound marks the expected-absence outcome of a resolver. Most games
// have no playoff context and some have no broadcast; callers render the
// absence, they do not treat it as a failure.
var ErrNotFound = errors.New("not found")

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// AmbiguousReferenceError is returned when a free-form team reference
// substring-matches more than one canonical team.
type AmbiguousReferenceError struct {
	Reference  string
	Candidates []string
}

func (e *AmbiguousReferenceError) Error() string {
	return fmt.Sprintf("team reference %q is ambiguous: matches %s", e.Reference, strings.Join(e.Candidates, ", "))
}

// AsAmbiguousReferenceError attempts to unwrap an error into an AmbiguousReferenceError.
func AsAmbiguousReferenceError(err error) (*AmbiguousReferenceError, bool) {
	var ambErr *AmbiguousReferenceError
	if errors.As(err, &ambErr) {
		return ambErr, true
	}
	return nil, false
}
