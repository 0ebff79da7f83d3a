package domain

import "github.com/sessojunior/agendamento/pkg/types"

// AgendaEventType classifies one 15-minute step of a professional's day
type AgendaEventType string

const (
	// EventNotWorkTime marks a step outside the professional's own working window
	EventNotWorkTime AgendaEventType = "not_work_time"
	// EventUnavailableDate marks a step on a date the professional is on leave
	EventUnavailableDate AgendaEventType = "unavailable_date"
	// EventBlockedTime marks the start of a manually declared block
	EventBlockedTime AgendaEventType = "blocked_time"
	// EventAppointmentTime marks the start of a booked appointment
	EventAppointmentTime AgendaEventType = "appointment_time"
	// EventFreeTime marks a bookable step inside the working window
	EventFreeTime AgendaEventType = "free_time"
	// EventEmpty is a continuation step inside a longer block or appointment,
	// emitted so the timeline keeps uniform 15-minute granularity
	EventEmpty AgendaEventType = "empty"
)

// AgendaEvent is one step of a professional's daily timeline.
// DurationMinutes, Description, CustomerName and ServiceName are only set
// for the event types that carry them.
type AgendaEvent struct {
	Time            types.TimeString
	Type            AgendaEventType
	DurationMinutes int
	Description     string
	CustomerName    string
	ServiceName     string
}
