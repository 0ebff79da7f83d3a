package available_professionals

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/sessojunior/agendamento/internal/domain"
	"github.com/sessojunior/agendamento/pkg/ptr"
)

// UseCase determines which professionals are free at one exact instant.
// Unlike the slot resolver this is a pointwise membership test: it needs
// no duration-step alignment, only the working window and the occupied
// intervals at the requested minute.
type UseCase struct {
	records RecordSource
	logger  Logger
}

// NewUseCase creates a new use case instance
func NewUseCase(records RecordSource, logger Logger) *UseCase {
	return &UseCase{
		records: records,
		logger:  logger,
	}
}

// Execute returns the professionals free at the requested time
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AvailableProfessionals: business=%s, service=%s, date=%s, time=%s",
		req.BusinessSlug, req.ServiceID, req.Date.Format(domain.DateFormat), req.Time)

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AvailableProfessionals: validation failed: %v", err)
		return nil, err
	}

	// Validated above
	minute, _ := req.Time.Minutes()

	// 2. Resolve the business by slug
	business, err := uc.records.GetBusinessBySlug(ctx, req.BusinessSlug)
	if err != nil {
		if errors.Is(err, domain.ErrBusinessNotFound) {
			uc.logger.Warn("AvailableProfessionals: business slug=%s not found", req.BusinessSlug)
		} else {
			uc.logger.Error("AvailableProfessionals: failed to get business slug=%s: %v", req.BusinessSlug, err)
		}
		return emptyResponse(req), nil
	}

	// 3. Fetch professionals and appointments concurrently
	var (
		employees    []*domain.Employee
		appointments []*domain.Appointment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		employees, err = uc.records.ListEmployees(gctx, domain.EmployeeFilter{
			BusinessID: business.ID,
			Status:     ptr.Ptr(domain.EmployeeStatusActive),
		})
		return err
	})
	g.Go(func() error {
		var err error
		appointments, err = uc.records.ListAppointments(gctx, domain.AppointmentFilter{
			BusinessID: business.ID,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("AvailableProfessionals: failed to fetch records for business=%s: %v", business.ID, err)
		return emptyResponse(req), nil
	}

	// 4. Test each eligible professional at the requested instant
	available := make([]domain.ProfessionalRef, 0)

	for _, emp := range employees {
		if !emp.IsActive() {
			continue
		}
		if _, ok := emp.ServiceDuration(req.ServiceID); !ok {
			continue
		}
		if emp.OnLeave(req.Date) {
			continue
		}

		workStart, workEnd, ok := emp.WorkWindow()
		if !ok {
			uc.logger.Warn("AvailableProfessionals: professional %s has unusable work time, skipping", emp.ID)
			continue
		}

		// The instant must fall inside the working window
		if minute < workStart || minute >= workEnd {
			continue
		}

		busy := domain.BusyIntervals(emp, appointments, req.Date)
		if domain.ConflictAt(minute, busy) {
			continue
		}

		available = append(available, domain.ProfessionalRef{ID: emp.ID, Name: emp.Name})
	}

	uc.logger.Info("AvailableProfessionals: %d professionals free at %s for business=%s, service=%s",
		len(available), req.Time, req.BusinessSlug, req.ServiceID)

	return &Response{
		BusinessSlug:  req.BusinessSlug,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
		Professionals: available,
	}, nil
}
