package domain

import (
	"time"

	"github.com/sessojunior/agendamento/pkg/types"
)

// EmployeeStatus represents the lifecycle status of a professional
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusInactive EmployeeStatus = "inactive"
)

// EmployeeService pairs a service with the duration this professional
// takes to perform it. Duration is per (professional, service), not a
// business-global value.
type EmployeeService struct {
	ServiceID       string
	DurationMinutes int
}

// WorkTime is a professional's single daily working window. It applies
// uniformly to every calendar day; there is no per-weekday variation.
type WorkTime struct {
	Start types.TimeString
	End   types.TimeString
}

// BlockedTime is a manually declared busy interval unrelated to bookings
// (meetings, breaks). Blocks may overlap the working-window boundaries;
// nothing prevents blocks from overlapping each other.
type BlockedTime struct {
	Start           types.TimeString
	DurationMinutes int
	Description     string
}

// UnavailableRange is an inclusive date span during which a professional
// is wholly unavailable (vacation, leave)
type UnavailableRange struct {
	DateStart time.Time
	DateEnd   time.Time
	Reason    string
}

// Employee represents a professional working for a business
type Employee struct {
	ID               string
	BusinessID       string
	Name             string
	Avatar           string
	Status           EmployeeStatus
	Services         []EmployeeService
	WorkTime         WorkTime
	BlockedTimes     []BlockedTime
	UnavailableDates []UnavailableRange
}

// IsActive returns true if the professional participates in availability
// and timeline computations
func (e *Employee) IsActive() bool {
	return e.Status == EmployeeStatusActive
}

// ServiceDuration returns the duration this professional takes for the
// given service, and whether they offer it at all
func (e *Employee) ServiceDuration(serviceID string) (int, bool) {
	for _, s := range e.Services {
		if s.ServiceID == serviceID {
			return s.DurationMinutes, true
		}
	}
	return 0, false
}

// OnLeave returns true if the professional has an unavailable range
// covering the given date
func (e *Employee) OnLeave(date time.Time) bool {
	for _, r := range e.UnavailableDates {
		if types.DateInRange(date, r.DateStart, r.DateEnd) {
			return true
		}
	}
	return false
}

// LeaveReason returns the reason of the unavailable range covering the
// given date, if any
func (e *Employee) LeaveReason(date time.Time) (string, bool) {
	for _, r := range e.UnavailableDates {
		if types.DateInRange(date, r.DateStart, r.DateEnd) {
			return r.Reason, true
		}
	}
	return "", false
}

// WorkWindow returns the professional's working window as minute-of-day
// values. ok is false when the record carries unusable work-time data
// (malformed clock strings or start >= end); such professionals are
// skipped in aggregate computations rather than aborting them.
func (e *Employee) WorkWindow() (start, end int, ok bool) {
	start, err := e.WorkTime.Start.Minutes()
	if err != nil {
		return 0, 0, false
	}
	end, err = e.WorkTime.End.Minutes()
	if err != nil {
		return 0, 0, false
	}
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

// EmployeeFilter filters professional listings at the record source
type EmployeeFilter struct {
	BusinessID string
	Status     *EmployeeStatus // nil = any status
}
