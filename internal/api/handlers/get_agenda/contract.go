package get_agenda

import (
	"context"

	buildAgenda "github.com/sessojunior/agendamento/internal/usecase/build_agenda"
)

type BuildAgendaUseCase interface {
	Execute(ctx context.Context, req *buildAgenda.Request) (*buildAgenda.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
