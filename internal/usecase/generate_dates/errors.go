package generate_dates

import "errors"

var (
	// ErrInvalidInput is returned on malformed request data
	ErrInvalidInput = errors.New("invalid input data")
)
