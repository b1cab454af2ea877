package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error so handlers can map it to one HTTP status,
// instead of per-operation ad hoc checks.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindUnauthorized
)

// Error is the application error type carried between services and handlers.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // underlying cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// NewValidation reports invalid input, including bad identifiers, broken
// category references and rejected uploads.
func NewValidation(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// NewNotFound reports that the addressed resource does not exist.
func NewNotFound(msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// NewUnauthorized reports a failed authentication or authorization check.
func NewUnauthorized(msg string) error {
	return &Error{Kind: KindUnauthorized, Msg: msg}
}

// NewInternal wraps an unexpected failure from a store, the filesystem
// or another collaborator.
func NewInternal(msg string, err error) error {
	return &Error{Kind: KindInternal, Msg: msg, Err: err}
}

// KindOf extracts the classification of err; untyped errors are internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// StatusCode maps an error to its transport status.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
