package feed

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable matches every fetch failure: transport errors and non-2xx responses.
	ErrUnavailable = errors.New("feed unavailable")
	// ErrMalformed is returned when the upstream body is not valid JSON.
	ErrMalformed = errors.New("malformed feed")
)

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("feed unavailable: upstream returned status %d", e.StatusCode)
}

// Is makes errors.Is(err, ErrUnavailable) hold for status errors.
func (e *StatusError) Is(target error) bool {
	return target == ErrUnavailable
}
