package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("validation failed")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrPaymentProvider    = errors.New("payment provider unavailable")
	ErrInvalidSignature   = errors.New("payment signature mismatch")
)
