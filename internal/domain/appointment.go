package domain

import (
	"time"

	"github.com/sessojunior/agendamento/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCanceled  AppointmentStatus = "canceled"
)

// Appointment represents an existing booking. Appointments are read-only
// from this service's perspective; only non-canceled appointments are
// occupancy-relevant. Duration may differ from the service's nominal
// duration for the professional.
type Appointment struct {
	ID              string
	BusinessID      string
	EmployeeID      string
	ServiceID       string
	CustomerID      string
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus
}

// IsCanceled returns true if the appointment no longer occupies its slot
func (a *Appointment) IsCanceled() bool {
	return a.Status == StatusCanceled
}

// Occupies returns true if the appointment blocks the given professional's
// time on the given date
func (a *Appointment) Occupies(employeeID string, date time.Time) bool {
	return a.EmployeeID == employeeID && !a.IsCanceled() && types.SameDay(a.Date, date)
}

// AppointmentFilter filters appointment listings at the record source.
// Optional fields are nil when not constrained.
type AppointmentFilter struct {
	BusinessID string
	EmployeeID *string
	DateFrom   *time.Time
	DateTo     *time.Time
	Status     *AppointmentStatus
}
