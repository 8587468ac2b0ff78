package service

import (
	"errors"
	"fmt"
)

const (
	// ErrInternalServerError means that an internal server error has occurred.
	ErrInternalServerError = "internal_server_error"
	// ErrEntityNotFound means that the requested record is absent in the store.
	ErrEntityNotFound = "entity_not_found"
	// ErrBadParameter means that a provided parameter or body does not match the declared contract.
	ErrBadParameter = "bad_parameter"
	// ErrServiceUnavailable means that the registry is still initializing and can't answer yet.
	ErrServiceUnavailable = "service_unavailable"
)

// DiscoveryError represents an error within the context of the discovery registry.
type DiscoveryError struct {
	// Code is a machine-readable code.
	Code string `json:"code,omitempty"`
	// Message is a human-readable message.
	Message string `json:"message"`
	// Inner is a wrapped error that is never shown to API consumers.
	Inner error `json:"-"`
}

// NewDiscoveryError creates a new DiscoveryError.
func NewDiscoveryError(code string, message string, inner error) *DiscoveryError {
	return &DiscoveryError{
		Code:    code,
		Message: message,
		Inner:   inner,
	}
}

// newCoded returns inner itself when it already carries a code, so the first classification wins.
func newCoded(code string, message string, inner error) *DiscoveryError {
	if de := ToDiscoveryError(inner); de != nil {
		return de
	}
	return NewDiscoveryError(code, message, inner)
}

func NewInternalServerError(message string, inner error) *DiscoveryError {
	return newCoded(ErrInternalServerError, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *DiscoveryError {
	return newCoded(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *DiscoveryError {
	return newCoded(ErrBadParameter, message, inner)
}

func NewServiceUnavailableError(message string, inner error) *DiscoveryError {
	return newCoded(ErrServiceUnavailable, message, inner)
}

func (e DiscoveryError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s %s: %v", e.Code, e.Message, e.Inner)
	}

	return fmt.Sprintf("%s %s", e.Code, e.Message)
}

// Unwrap the error returning the error's reason.
func (e DiscoveryError) Unwrap() error {
	return e.Inner
}

// ToDiscoveryError returns the DiscoveryError in err's chain, or nil.
func ToDiscoveryError(err error) *DiscoveryError {
	var e *DiscoveryError
	if errors.As(err, &e) {
		return e
	}

	return nil
}

// ToDiscoveryErrorCode returns the code of the error, if available.
func ToDiscoveryErrorCode(err error) string {
	if de := ToDiscoveryError(err); de != nil {
		return de.Code
	}
	return ""
}

func IsDiscoveryError(err error, code string) bool {
	return ToDiscoveryErrorCode(err) == code && code != ""
}

func IsInternalServerError(err error) bool {
	return IsDiscoveryError(err, ErrInternalServerError)
}

func IsEntityNotFoundError(err error) bool {
	return IsDiscoveryError(err, ErrEntityNotFound)
}

func IsBadParameterError(err error) bool {
	return IsDiscoveryError(err, ErrBadParameter)
}

func IsServiceUnavailableError(err error) bool {
	return IsDiscoveryError(err, ErrServiceUnavailable)
}
