package domain

// ServiceStatus represents the lifecycle status of a business service
type ServiceStatus string

const (
	ServiceStatusActive   ServiceStatus = "active"
	ServiceStatusInactive ServiceStatus = "inactive"
)

// Business represents a registered business (e.g. a barbershop).
// The slug is the unique human-readable key used on public pages.
type Business struct {
	ID          string
	Slug        string
	Name        string
	Description string
}

// Service represents a bookable service offered by a business.
// Order is significant and must be respected when listing; only active
// services are offered to customers. The duration customers book is not
// stored here: it lives on the (employee, service) pair.
type Service struct {
	ID          string
	BusinessID  string
	Order       int
	Name        string
	Description string
	Status      ServiceStatus
}

// IsActive returns true if the service is offered to customers
func (s *Service) IsActive() bool {
	return s.Status == ServiceStatusActive
}

// Customer represents a customer account, used only for name resolution
// on the manager calendar
type Customer struct {
	ID   string
	Name string
}

// ServiceFilter filters service listings at the record source
type ServiceFilter struct {
	BusinessID string
	Status     *ServiceStatus // nil = any status
}
