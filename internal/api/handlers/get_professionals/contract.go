package get_professionals

import (
	"context"

	"github.com/sessojunior/agendamento/internal/service/catalog/models"
)

type CatalogService interface {
	ListProfessionals(ctx context.Context, slug string) ([]models.ProfessionalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
