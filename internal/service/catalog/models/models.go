package models

import "github.com/sessojunior/agendamento/internal/domain"

// BusinessResponse is the public view of a business
type BusinessResponse struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FromDomainBusiness converts a domain business
func FromDomainBusiness(b *domain.Business) *BusinessResponse {
	return &BusinessResponse{
		ID:          b.ID,
		Slug:        b.Slug,
		Name:        b.Name,
		Description: b.Description,
	}
}

// ServiceResponse is the public view of a bookable service
type ServiceResponse struct {
	ID          string `json:"id"`
	Order       int    `json:"order"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FromDomainServices converts a domain service list, preserving order
func FromDomainServices(services []*domain.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		out = append(out, ServiceResponse{
			ID:          s.ID,
			Order:       s.Order,
			Name:        s.Name,
			Description: s.Description,
		})
	}
	return out
}

// ProfessionalResponse is the public view of a professional. When listed
// for a specific service, DurationMinutes carries that professional's
// duration for it.
type ProfessionalResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Avatar          string `json:"avatar,omitempty"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
}
