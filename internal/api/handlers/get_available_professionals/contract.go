package get_available_professionals

import (
	"context"

	availableProfessionals "github.com/sessojunior/agendamento/internal/usecase/available_professionals"
)

type AvailableProfessionalsUseCase interface {
	Execute(ctx context.Context, req *availableProfessionals.Request) (*availableProfessionals.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
