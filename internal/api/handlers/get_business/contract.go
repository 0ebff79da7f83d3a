package get_business

import (
	"context"

	"github.com/sessojunior/agendamento/internal/service/catalog/models"
)

type CatalogService interface {
	GetBusiness(ctx context.Context, slug string) (*models.BusinessResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
