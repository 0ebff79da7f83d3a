package domain

import "github.com/sessojunior/agendamento/pkg/types"

// ProfessionalRef identifies a professional on a time slot
type ProfessionalRef struct {
	ID   string
	Name string
}

// TimeSlot is a candidate booking start time for one service on one date.
// Derived per request, never persisted. A slot is available iff at least
// one eligible, non-leave professional has no conflicting block or booking
// covering [start, start+duration).
type TimeSlot struct {
	Time          types.TimeString
	Available     bool
	Reason        string // set only when unavailable
	Professionals []ProfessionalRef
}
