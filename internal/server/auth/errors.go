package auth

import (
	"errors"

	"github.com/dmitrijs2005/feastkeeper/internal/common"
)

// UnauthorizedError is the single externally visible authentication failure.
// Its message never includes Cause.
type UnauthorizedError struct {
	Cause error
}

// Unauthorized wraps cause into an *UnauthorizedError.
func Unauthorized(cause error) error {
	return &UnauthorizedError{Cause: cause}
}

func (e *UnauthorizedError) Error() string {
	return common.ErrorUnauthorized.Error()
}

func (e *UnauthorizedError) Is(target error) bool {
	return target == common.ErrorUnauthorized
}

func (e *UnauthorizedError) Unwrap() error {
	return e.Cause
}

// Reason returns the hidden cause of an authentication failure, or "" when
// err carries none. Meant for logs.
func Reason(err error) string {
	var ue *UnauthorizedError
	if errors.As(err, &ue) && ue.Cause != nil {
		return ue.Cause.Error()
	}
	return ""
}
