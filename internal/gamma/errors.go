package gamma

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured = errors.New("gamma api key not configured")
	ErrFailed        = errors.New("generation failed")
	ErrTimeout       = errors.New("generation timed out")
)

// StatusError carries a non-2xx answer from the generations endpoint.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("gamma returned status %d: %s", e.StatusCode, e.Body)
}
