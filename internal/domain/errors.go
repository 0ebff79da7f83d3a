package domain

import "errors"

// Not-found sentinels shared by every record source implementation, so
// callers can test them without knowing which backend served the query.
var (
	// ErrBusinessNotFound is returned when no business matches the slug
	ErrBusinessNotFound = errors.New("business not found")

	// ErrServiceNotFound is returned when no service matches the id
	ErrServiceNotFound = errors.New("service not found")

	// ErrCustomerNotFound is returned when no customer matches the id
	ErrCustomerNotFound = errors.New("customer not found")
)
