package get_services

import (
	"context"

	"github.com/sessojunior/agendamento/internal/service/catalog/models"
)

type CatalogService interface {
	ListServices(ctx context.Context, slug string) ([]models.ServiceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
