package resolve_slots

import (
	"sort"

	"github.com/sessojunior/agendamento/internal/domain"
)

// reasonNoProfessional is the customer-facing reason attached to slots
// nobody can serve
const reasonNoProfessional = "Nenhum profissional disponível"

// eligibleProfessional is an active professional offering the requested
// service, annotated with their duration for it
type eligibleProfessional struct {
	employee        *domain.Employee
	serviceDuration int
}

// eligibleProfessionals filters to active professionals offering the
// service. Professionals on leave stay eligible here: they still shape
// the slot universe even though they produce no available slots.
func eligibleProfessionals(employees []*domain.Employee, serviceID string) []eligibleProfessional {
	var eligible []eligibleProfessional
	for _, emp := range employees {
		if !emp.IsActive() {
			continue
		}
		duration, ok := emp.ServiceDuration(serviceID)
		if !ok || duration <= 0 {
			continue
		}
		eligible = append(eligible, eligibleProfessional{employee: emp, serviceDuration: duration})
	}
	return eligible
}

// candidateStarts generates slot start times by stepping through the
// working window in increments of the professional's service duration.
// A start is only a candidate when the full duration fits before the
// window end; there is no partial trailing slot.
func candidateStarts(workStart, workEnd, duration int) []int {
	var starts []int
	for t := workStart; t+duration <= workEnd; t += duration {
		starts = append(starts, t)
	}
	return starts
}

// slotEntry accumulates per-time availability across professionals
type slotEntry struct {
	available     bool
	reason        string
	professionals []domain.ProfessionalRef
}

// slotUniverse is the union of candidate start times across all eligible
// professionals, sorted ascending. Professionals with different durations
// contribute different grids; slots need not align to one stepping.
func slotUniverse(professionals []eligibleProfessional) []int {
	seen := make(map[int]struct{})
	for _, pro := range professionals {
		workStart, workEnd, ok := pro.employee.WorkWindow()
		if !ok {
			continue
		}
		for _, t := range candidateStarts(workStart, workEnd, pro.serviceDuration) {
			seen[t] = struct{}{}
		}
	}

	universe := make([]int, 0, len(seen))
	for t := range seen {
		universe = append(universe, t)
	}
	sort.Ints(universe)

	return universe
}
