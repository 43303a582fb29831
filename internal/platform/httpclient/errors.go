package httpclient

import (
	"fmt"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidURL = crerr.New("invalid request url")
	ErrTransport  = crerr.New("transport failure")
	ErrStatus     = crerr.New("unexpected http status")
	ErrEmptyBody  = crerr.New("empty response body")
	ErrDecode     = crerr.New("decode response body")

	// ErrBodyTooLarge is returned instead of decoding a truncated body.
	ErrBodyTooLarge = crerr.New("response body too large")
)

// StatusError carries the status code of a non-2xx response. It matches ErrStatus.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP %d", e.Code)
	}
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Body)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrStatus
}

// Retryable reports whether the upstream may succeed on a later attempt.
func (e *StatusError) Retryable() bool {
	return e.Code == 429 || e.Code >= 500
}
