package build_agenda

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/sessojunior/agendamento/internal/domain"
	"github.com/sessojunior/agendamento/pkg/ptr"
	"github.com/sessojunior/agendamento/pkg/types"
)

// UseCase builds one professional's daily timeline for the manager
// calendar: a fixed 15-minute sequence of typed events spanning the
// global working window of the business.
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

// Execute builds the timeline for the requested professional and date
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BuildAgenda: business=%s, professional=%s, date=%s",
		req.BusinessSlug, req.ProfessionalID, req.Date.Format(domain.DateFormat))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BuildAgenda: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the business by slug
	business, err := uc.records.GetBusinessBySlug(ctx, req.BusinessSlug)
	if err != nil {
		if errors.Is(err, domain.ErrBusinessNotFound) {
			uc.logger.Warn("BuildAgenda: business slug=%s not found", req.BusinessSlug)
		} else {
			uc.logger.Error("BuildAgenda: failed to get business slug=%s: %v", req.BusinessSlug, err)
		}
		return emptyResponse(req), nil
	}

	// 3. Fetch the active professionals and the target professional's
	// same-day appointments concurrently
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
			EmployeeID: ptr.Ptr(req.ProfessionalID),
			DateFrom:   ptr.Ptr(req.Date),
			DateTo:     ptr.Ptr(req.Date),
		})
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("BuildAgenda: failed to fetch records for business=%s: %v", business.ID, err)
		return emptyResponse(req), nil
	}

	// 4. Compute the shared time axis; without any usable working window
	// there is no calendar to draw
	windowStart, windowEnd, ok := globalWindow(employees)
	if !ok {
		uc.logger.Warn("BuildAgenda: no active professional with usable work time for business=%s", business.ID)
		return emptyResponse(req), nil
	}

	// 5. Locate the target professional among the active ones
	var target *domain.Employee
	for _, emp := range employees {
		if emp.ID == req.ProfessionalID {
			target = emp
			break
		}
	}
	if target == nil {
		uc.logger.Warn("BuildAgenda: professional id=%s not found in business=%s", req.ProfessionalID, business.ID)
		return emptyResponse(req), nil
	}

	// 6. Walk the global window in 15-minute steps. The order of checks
	// matters: continuation of a multi-slot event, then leave, then the
	// professional's own window, then blocks, then bookings, then free.
	onLeave := target.OnLeave(req.Date)
	workStart, workEnd, hasWindow := target.WorkWindow()
	idx := indexStarts(target, sameDayAppointments(appointments, target.ID, req))
	names := newNameCache(uc.records, uc.logger)

	events := make([]domain.AgendaEvent, 0, (windowEnd-windowStart)/domain.AgendaStepMinutes)
	skipUntil := -1

	for t := windowStart; t < windowEnd; t += domain.AgendaStepMinutes {
		step := types.FromMinutes(t)

		switch {
		case t < skipUntil:
			events = append(events, domain.AgendaEvent{Time: step, Type: domain.EventEmpty})

		case onLeave:
			events = append(events, domain.AgendaEvent{Time: step, Type: domain.EventUnavailableDate})

		case !hasWindow || t < workStart || t >= workEnd:
			events = append(events, domain.AgendaEvent{Time: step, Type: domain.EventNotWorkTime})

		default:
			if block, ok := idx.blocks[t]; ok {
				events = append(events, domain.AgendaEvent{
					Time:            step,
					Type:            domain.EventBlockedTime,
					DurationMinutes: block.DurationMinutes,
					Description:     block.Description,
				})
				skipUntil = t + block.DurationMinutes
				break
			}

			if appt, ok := idx.appointments[t]; ok {
				events = append(events, domain.AgendaEvent{
					Time:            step,
					Type:            domain.EventAppointmentTime,
					DurationMinutes: appt.DurationMinutes,
					CustomerName:    names.customerName(ctx, appt.CustomerID),
					ServiceName:     names.serviceName(ctx, appt.ServiceID),
				})
				skipUntil = t + appt.DurationMinutes
				break
			}

			events = append(events, domain.AgendaEvent{Time: step, Type: domain.EventFreeTime})
		}
	}

	uc.logger.Info("BuildAgenda: generated %d events for professional=%s, date=%s",
		len(events), req.ProfessionalID, req.Date.Format(domain.DateFormat))

	return &Response{
		BusinessSlug:   req.BusinessSlug,
		ProfessionalID: req.ProfessionalID,
		Date:           req.Date,
		Events:         events,
	}, nil
}

// sameDayAppointments keeps only the target professional's appointments on
// the requested date. The record source already filters on both, but the
// guarantees are per backend, so the invariant is enforced here as well.
func sameDayAppointments(appointments []*domain.Appointment, employeeID string, req *Request) []*domain.Appointment {
	filtered := make([]*domain.Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if appt.Occupies(employeeID, req.Date) {
			filtered = append(filtered, appt)
		}
	}
	return filtered
}
