package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sessojunior/agendamento/internal/domain"
	"github.com/sessojunior/agendamento/internal/service/catalog/models"
	"github.com/sessojunior/agendamento/pkg/ptr"
)

// Service serves the public business page and the manager calendar
// header: business data, the active service list and the professionals
// behind each service. Read-only.
type Service struct {
	records RecordSource
	logger  Logger
}

// NewService creates a catalog service
func NewService(records RecordSource, logger Logger) *Service {
	return &Service{
		records: records,
		logger:  logger,
	}
}

// GetBusiness fetches a business by slug
func (s *Service) GetBusiness(ctx context.Context, slug string) (*models.BusinessResponse, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: business slug is required", ErrInvalidInput)
	}

	business, err := s.records.GetBusinessBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrBusinessNotFound) {
			s.logger.Warn("GetBusiness: business slug=%s not found", slug)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetBusiness: record source error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: GetBusiness - record source error: %v", ErrInternal, err)
	}

	return models.FromDomainBusiness(business), nil
}

// ListServices fetches the active services of a business, ordered by
// their display order
func (s *Service) ListServices(ctx context.Context, slug string) ([]models.ServiceResponse, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: business slug is required", ErrInvalidInput)
	}

	business, err := s.records.GetBusinessBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrBusinessNotFound) {
			s.logger.Warn("ListServices: business slug=%s not found", slug)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("ListServices: record source error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: ListServices - record source error: %v", ErrInternal, err)
	}

	services, err := s.records.ListServices(ctx, domain.ServiceFilter{
		BusinessID: business.ID,
		Status:     ptr.Ptr(domain.ServiceStatusActive),
	})
	if err != nil {
		s.logger.Error("ListServices: record source error for business=%s: %v", business.ID, err)
		return nil, fmt.Errorf("%w: ListServices - record source error: %v", ErrInternal, err)
	}

	// Record sources order by the display order already; sorting again
	// keeps the contract independent of the backend
	sort.SliceStable(services, func(i, j int) bool {
		return services[i].Order < services[j].Order
	})

	s.logger.Info("ListServices: %d active services for business=%s", len(services), slug)
	return models.FromDomainServices(services), nil
}

// ListServiceProfessionals fetches the active professionals offering the
// given service, each annotated with their own duration for it
func (s *Service) ListServiceProfessionals(ctx context.Context, slug, serviceID string) ([]models.ProfessionalResponse, error) {
	if slug == "" || serviceID == "" {
		return nil, fmt.Errorf("%w: business slug and service id are required", ErrInvalidInput)
	}

	business, err := s.records.GetBusinessBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrBusinessNotFound) {
			s.logger.Warn("ListServiceProfessionals: business slug=%s not found", slug)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("ListServiceProfessionals: record source error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: ListServiceProfessionals - record source error: %v", ErrInternal, err)
	}

	employees, err := s.records.ListEmployees(ctx, domain.EmployeeFilter{
		BusinessID: business.ID,
		Status:     ptr.Ptr(domain.EmployeeStatusActive),
	})
	if err != nil {
		s.logger.Error("ListServiceProfessionals: record source error for business=%s: %v", business.ID, err)
		return nil, fmt.Errorf("%w: ListServiceProfessionals - record source error: %v", ErrInternal, err)
	}

	professionals := make([]models.ProfessionalResponse, 0)
	for _, emp := range employees {
		duration, ok := emp.ServiceDuration(serviceID)
		if !ok {
			continue
		}
		professionals = append(professionals, models.ProfessionalResponse{
			ID:              emp.ID,
			Name:            emp.Name,
			Avatar:          emp.Avatar,
			DurationMinutes: duration,
		})
	}

	s.logger.Info("ListServiceProfessionals: %d professionals offer service=%s at business=%s",
		len(professionals), serviceID, slug)
	return professionals, nil
}

// ListProfessionals fetches all active professionals of a business, used
// for the manager calendar header
func (s *Service) ListProfessionals(ctx context.Context, slug string) ([]models.ProfessionalResponse, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: business slug is required", ErrInvalidInput)
	}

	business, err := s.records.GetBusinessBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrBusinessNotFound) {
			s.logger.Warn("ListProfessionals: business slug=%s not found", slug)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("ListProfessionals: record source error for slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: ListProfessionals - record source error: %v", ErrInternal, err)
	}

	employees, err := s.records.ListEmployees(ctx, domain.EmployeeFilter{
		BusinessID: business.ID,
		Status:     ptr.Ptr(domain.EmployeeStatusActive),
	})
	if err != nil {
		s.logger.Error("ListProfessionals: record source error for business=%s: %v", business.ID, err)
		return nil, fmt.Errorf("%w: ListProfessionals - record source error: %v", ErrInternal, err)
	}

	professionals := make([]models.ProfessionalResponse, 0, len(employees))
	for _, emp := range employees {
		professionals = append(professionals, models.ProfessionalResponse{
			ID:     emp.ID,
			Name:   emp.Name,
			Avatar: emp.Avatar,
		})
	}

	return professionals, nil
}
