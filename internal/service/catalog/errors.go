package catalog

import "errors"

var (
	// ErrBusinessNotFound is returned when the slug does not resolve
	ErrBusinessNotFound = errors.New("business not found")

	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on record source failures
	ErrInternal = errors.New("catalog service: internal error")
)
