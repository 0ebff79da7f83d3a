package resolve_slots

import (
	"context"
	"errors"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/sessojunior/agendamento/internal/domain"
	"github.com/sessojunior/agendamento/pkg/ptr"
	"github.com/sessojunior/agendamento/pkg/types"
)

// UseCase resolves the bookable time slots of a business for one service
// on one date. Read-only and best effort: any backend failure degrades to
// an empty slot list, never an error to the caller.
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

// Execute resolves the slots for the requested business, service and date
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveSlots: business=%s, service=%s, date=%s",
		req.BusinessSlug, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Validate input
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the business by slug; unknown slug or transport failure
	// both short-circuit to an empty result
	business, err := uc.records.GetBusinessBySlug(ctx, req.BusinessSlug)
	if err != nil {
		if errors.Is(err, domain.ErrBusinessNotFound) {
			uc.logger.Warn("ResolveSlots: business slug=%s not found", req.BusinessSlug)
		} else {
			uc.logger.Error("ResolveSlots: failed to get business slug=%s: %v", req.BusinessSlug, err)
		}
		return emptyResponse(req), nil
	}

	// 3. Fetch professionals and appointments concurrently; the two reads
	// are independent
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
		// Appointments are fetched for the whole business; date and
		// status filtering happens per professional below
		appointments, err = uc.records.ListAppointments(gctx, domain.AppointmentFilter{
			BusinessID: business.ID,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("ResolveSlots: failed to fetch records for business=%s: %v", business.ID, err)
		return emptyResponse(req), nil
	}

	// 4. Filter to professionals offering the service, with their own
	// duration for it
	professionals := eligibleProfessionals(employees, req.ServiceID)

	// 5. Mark available slots per professional
	entries := make(map[int]*slotEntry)

	for _, pro := range professionals {
		if pro.employee.OnLeave(req.Date) {
			uc.logger.Info("ResolveSlots: professional %s is on leave for %s",
				pro.employee.ID, req.Date.Format(domain.DateFormat))
			continue
		}

		workStart, workEnd, ok := pro.employee.WorkWindow()
		if !ok {
			uc.logger.Warn("ResolveSlots: professional %s has unusable work time, skipping", pro.employee.ID)
			continue
		}

		busy := domain.BusyIntervals(pro.employee, appointments, req.Date)

		for _, t := range candidateStarts(workStart, workEnd, pro.serviceDuration) {
			candidate := domain.Interval{Start: t, End: t + pro.serviceDuration}
			if domain.HasConflict(candidate, busy) {
				continue
			}

			entry, ok := entries[t]
			if !ok {
				entry = &slotEntry{}
				entries[t] = entry
			}
			entry.available = true
			entry.reason = ""
			entry.professionals = append(entry.professionals, domain.ProfessionalRef{
				ID:   pro.employee.ID,
				Name: pro.employee.Name,
			})
		}
	}

	// 6. Fill the rest of the slot universe as unavailable. The universe
	// is built from all eligible professionals, including those excluded
	// by leave, so their grid times surface with a reason instead of
	// silently disappearing.
	universe := slotUniverse(professionals)
	for _, t := range universe {
		if _, ok := entries[t]; !ok {
			entries[t] = &slotEntry{
				available:     false,
				reason:        reasonNoProfessional,
				professionals: []domain.ProfessionalRef{},
			}
		}
	}

	// 7. Sort ascending by clock time
	times := make([]int, 0, len(entries))
	for t := range entries {
		times = append(times, t)
	}
	sort.Ints(times)

	slots := make([]domain.TimeSlot, 0, len(times))
	for _, t := range times {
		entry := entries[t]
		slots = append(slots, domain.TimeSlot{
			Time:          types.FromMinutes(t),
			Available:     entry.available,
			Reason:        entry.reason,
			Professionals: entry.professionals,
		})
	}

	uc.logger.Info("ResolveSlots: generated %d slots for business=%s, service=%s, date=%s",
		len(slots), req.BusinessSlug, req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		BusinessSlug: req.BusinessSlug,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		Slots:        slots,
	}, nil
}
