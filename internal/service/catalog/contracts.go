package catalog

import (
	"context"

	"github.com/sessojunior/agendamento/internal/domain"
)

// RecordSource is the record query surface the catalog service needs
type RecordSource interface {
	GetBusinessBySlug(ctx context.Context, slug string) (*domain.Business, error)
	ListServices(ctx context.Context, filter domain.ServiceFilter) ([]*domain.Service, error)
	ListEmployees(ctx context.Context, filter domain.EmployeeFilter) ([]*domain.Employee, error)
}

// Logger is the logging interface required by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
