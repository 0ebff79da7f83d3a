package build_agenda

import (
	"context"

	"github.com/sessojunior/agendamento/internal/domain"
)

// RecordSource is the record query surface this use case needs
type RecordSource interface {
	GetBusinessBySlug(ctx context.Context, slug string) (*domain.Business, error)
	ListEmployees(ctx context.Context, filter domain.EmployeeFilter) ([]*domain.Employee, error)
	ListAppointments(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	GetCustomerByID(ctx context.Context, id string) (*domain.Customer, error)
	GetServiceByID(ctx context.Context, id string) (*domain.Service, error)
}

// Logger is the logging interface required by the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
