package warlight

import (
	"errors"
	"fmt"
)

var (
	// ErrGameNotFound matches APIErrors from QueryGame for games the server does not know.
	ErrGameNotFound = errors.New("warlight: game not found")
	// ErrInvalidArgument matches ArgumentErrors raised before a request is sent.
	ErrInvalidArgument = errors.New("warlight: invalid argument")
)

// APIError carries the message of an "error" field returned by the API.
type APIError struct {
	Op         string
	StatusCode int
	Message    string

	notFound bool
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "api error"
	}
	if e.Op == "" {
		return "warlight: " + msg
	}
	return fmt.Sprintf("warlight: %s: %s", e.Op, msg)
}

// Unwrap exposes ErrGameNotFound for not-found query errors.
func (e *APIError) Unwrap() error {
	if e.notFound {
		return ErrGameNotFound
	}
	return nil
}

// NotFound reports whether the error is the query-game not-found specialization.
func (e *APIError) NotFound() bool {
	return e.notFound
}

// StatusError is returned for non-200 responses that carry no "error" field.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("warlight: %s: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("warlight: %s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
}

// ArgumentError reports caller input rejected before any request was sent.
type ArgumentError struct {
	Op     string
	Arg    string
	Reason string
}

func (e *ArgumentError) Error() string {
	if e.Arg == "" {
		return fmt.Sprintf("warlight: %s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("warlight: %s: invalid %s: %s", e.Op, e.Arg, e.Reason)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// AsAPIError attempts to unwrap an error into an APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// AsArgumentError attempts to unwrap an error into an ArgumentError.
func AsArgumentError(err error) (*ArgumentError, bool) {
	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return argErr, true
	}
	return nil, false
}

func argError(op, arg, reason string) *ArgumentError {
	return &ArgumentError{Op: op, Arg: arg, Reason: reason}
}
