package errors

import "errors"

var (
	ErrAlreadyExists       = errors.New("already exists")
	ErrNotFound            = errors.New("not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidOrderItems   = errors.New("invalid order items")
	ErrInvalidDocumentType = errors.New("invalid document type")
	ErrValidation          = errors.New("validation failed")
)
