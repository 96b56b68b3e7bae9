package service

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned when the auth server rejects the
// email/password pair (HTTP 401).
var ErrInvalidCredentials = errors.New("invalid credentials")

// RequestError wraps any other transport or server failure. Façades never
// retry; the wrapped cause propagates unchanged to the command layer.
type RequestError struct {
	Op  string // e.g. "list todos"
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: request failed: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// DecodeError indicates a response body did not match the expected schema.
// Server shape is validated at the API boundary rather than trusted.
type DecodeError struct {
	Resource string // e.g. "todos"
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Resource, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
