package build_agenda

import "github.com/sessojunior/agendamento/internal/domain"

// globalWindow computes the shared time axis of the manager calendar:
// the earliest working-window start and latest end across all active
// professionals, rounded outward to whole hours. ok is false when no
// professional has a usable window.
func globalWindow(employees []*domain.Employee) (start, end int, ok bool) {
	found := false

	for _, emp := range employees {
		if !emp.IsActive() {
			continue
		}
		workStart, workEnd, usable := emp.WorkWindow()
		if !usable {
			continue
		}
		if !found || workStart < start {
			start = workStart
		}
		if !found || workEnd > end {
			end = workEnd
		}
		found = true
	}

	if !found {
		return 0, 0, false
	}

	// Floor the start and ceil the end to the enclosing hour
	start -= start % domain.MinutesPerHour
	if rem := end % domain.MinutesPerHour; rem != 0 {
		end += domain.MinutesPerHour - rem
	}

	return start, end, true
}

// startIndex maps minute-of-day start times to the block or appointment
// beginning exactly there. Events starting off the 15-minute grid are only
// detected when a step lands exactly on their start; the cadence is the
// granularity of detection.
type startIndex struct {
	blocks       map[int]domain.BlockedTime
	appointments map[int]*domain.Appointment
}

func indexStarts(emp *domain.Employee, appointments []*domain.Appointment) startIndex {
	idx := startIndex{
		blocks:       make(map[int]domain.BlockedTime),
		appointments: make(map[int]*domain.Appointment),
	}

	for _, bt := range emp.BlockedTimes {
		start, err := bt.Start.Minutes()
		if err != nil {
			continue
		}
		idx.blocks[start] = bt
	}

	for _, appt := range appointments {
		if appt.IsCanceled() {
			continue
		}
		start, err := appt.StartTime.Minutes()
		if err != nil {
			continue
		}
		idx.appointments[start] = appt
	}

	return idx
}
