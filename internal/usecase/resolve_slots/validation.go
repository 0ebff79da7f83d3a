package resolve_slots

import "fmt"

// validateRequest validates the request input
func validateRequest(req *Request) error {
	if req.BusinessSlug == "" {
		return fmt.Errorf("%w: business slug is required", ErrInvalidInput)
	}

	if req.ServiceID == "" {
		return fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
