package recordstore

import "errors"

var (
	// ErrInternal is returned on request construction or transport failures
	ErrInternal = errors.New("recordstore client: internal error")

	// ErrInvalidResponse is returned on non-success status codes
	ErrInvalidResponse = errors.New("recordstore client: invalid response")
)
