package domain

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized covers both unknown email and wrong password so the
	// response cannot be used to enumerate registered accounts.
	ErrUnauthorized = errors.New("unauthorized")

	ErrAccountLocked = errors.New("account temporarily locked")

	// Token verification failures. Both surface as 401 at the boundary; the
	// distinction exists for logging and tests.
	ErrSignatureInvalid        = errors.New("token signature invalid")
	ErrTokenMalformedOrExpired = errors.New("token malformed or expired")

	ErrStorageUnavailable = errors.New("storage unavailable")
)
