// Package errs defines the typed errors surfaced to API clients. Every error carries a
// machine-readable kind that doubles as the GraphQL extensions code.
package errs

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindValidation      Kind = "BAD_USER_INPUT"
	KindAuthentication  Kind = "UNAUTHENTICATED"
	KindInvalidToken    Kind = "FORBIDDEN"
	KindNotFound        Kind = "NOT_FOUND"
	KindConfiguration   Kind = "CONFIGURATION_ERROR"
	KindExternalService Kind = "EXTERNAL_SERVICE_ERROR"
	KindInternal        Kind = "INTERNAL_SERVER_ERROR"
)

// Sentinels for errors.Is checks. Matching is done on kind only.
var (
	ErrValidation      = &Error{Kind: KindValidation, Message: "invalid input"}
	ErrAuthentication  = &Error{Kind: KindAuthentication, Message: "authentication failed"}
	ErrInvalidToken    = &Error{Kind: KindInvalidToken, Message: "invalid or expired token"}
	ErrNotFound        = &Error{Kind: KindNotFound, Message: "not found"}
	ErrConfiguration   = &Error{Kind: KindConfiguration, Message: "server misconfigured"}
	ErrExternalService = &Error{Kind: KindExternalService, Message: "external service failed"}
	ErrInternal        = &Error{Kind: KindInternal, Message: "internal server error"}
)

type Error struct {
	Kind    Kind
	Message string // safe to show to clients
	Err     error  // internal cause, never serialized
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Extensions is picked up by the GraphQL runtime and serialized next to the message.
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code": string(e.Kind),
	}
}

// KindOf returns the kind of the first typed error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Kind
	}
	return KindInternal
}

// Public returns err unchanged when it is typed, otherwise a generic internal error
// that hides the cause from clients.
func Public(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if errors.As(err, &typed) {
		return &Error{Kind: typed.Kind, Message: typed.Message}
	}
	return &Error{Kind: KindInternal, Message: ErrInternal.Message}
}
