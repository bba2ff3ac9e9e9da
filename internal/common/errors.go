// Package common defines shared constants and sentinel errors used across
// the server, transport and CLI layers. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("already exists")

	// Service-level errors (externally visible codes).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorValidation   = errors.New("validation error")

	// Token errors produced by the codec. They never leave the server as is.
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrMalformedToken   = errors.New("malformed token")
	ErrMissingClaim     = errors.New("missing token claim")

	// Password hashing errors.
	ErrMalformedHash = errors.New("malformed password hash")
	ErrEncoding      = errors.New("invalid password encoding")
)
