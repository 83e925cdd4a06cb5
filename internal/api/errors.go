package api

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated is returned before any network I/O when no token is stored.
	ErrUnauthenticated = errors.New("Not authenticated")
	// ErrMalformed marks a response body that is not a usable envelope.
	ErrMalformed = errors.New("malformed response")
)

// Error is a failed call to the admin API.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// IsUnauthorized reports whether err means the session has no usable token,
// either locally or according to the API.
func IsUnauthorized(err error) bool {
	if errors.Is(err, ErrUnauthenticated) {
		return true
	}
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
