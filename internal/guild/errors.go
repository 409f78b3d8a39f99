package guild

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by the Engine wraps exactly one of them.
var (
	ErrValidation    = errors.New("invalid request")
	ErrNotFound      = errors.New("not found")
	ErrAuthorization = errors.New("not authorized")
	ErrDuplicate     = errors.New("duplicate")
	ErrUpstream      = errors.New("upstream failure")
)

type ErrorType string

const (
	ErrorTypeNone          ErrorType = ""
	ErrorTypeValidation    ErrorType = "VALIDATION"
	ErrorTypeNotFound      ErrorType = "NOT_FOUND"
	ErrorTypeAuthorization ErrorType = "AUTHORIZATION"
	ErrorTypeDuplicate     ErrorType = "DUPLICATE"
	ErrorTypeUpstream      ErrorType = "UPSTREAM"
)

// ErrorTypeOf classifies err. Unclassified errors are reported as upstream failures.
func ErrorTypeOf(err error) ErrorType {
	switch {
	case err == nil:
		return ErrorTypeNone
	case errors.Is(err, ErrValidation):
		return ErrorTypeValidation
	case errors.Is(err, ErrNotFound):
		return ErrorTypeNotFound
	case errors.Is(err, ErrAuthorization):
		return ErrorTypeAuthorization
	case errors.Is(err, ErrDuplicate):
		return ErrorTypeDuplicate
	default:
		return ErrorTypeUpstream
	}
}

func upstream(step string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUpstream, step, err)
}
