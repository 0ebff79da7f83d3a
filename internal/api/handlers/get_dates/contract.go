package get_dates

import (
	generateDates "github.com/sessojunior/agendamento/internal/usecase/generate_dates"
)

type GenerateDatesUseCase interface {
	Execute(req *generateDates.Request) (*generateDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
