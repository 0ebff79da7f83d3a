package get_dates

import (
	"net/http"
	"strconv"
	"time"

	"github.com/sessojunior/agendamento/internal/api/handlers"
	"github.com/sessojunior/agendamento/internal/domain"
	generateDates "github.com/sessojunior/agendamento/internal/usecase/generate_dates"
)

const (
	msgInvalidStart = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidDays  = "quantidade de dias inválida"
)

// defaultDays is the number of day cards the booking page shows at once
const defaultDays = 5

type Handler struct {
	useCase GenerateDatesUseCase
	logger  Logger
}

func NewHandler(useCase GenerateDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/business/{slug}/dates
// Query params: start (optional, YYYY-MM-DD, defaults to today),
// days (optional, defaults to 5, capped at 60)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	start := time.Now().UTC()
	if startStr := r.URL.Query().Get("start"); startStr != "" {
		parsed, err := time.Parse(domain.DateFormat, startStr)
		if err != nil {
			h.logger.Warn("GET /business/{slug}/dates - Invalid start date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStart)
			return
		}
		start = parsed
	}

	days := defaultDays
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		parsed, err := strconv.Atoi(daysStr)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /business/{slug}/dates - Invalid days: %s", daysStr)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		days = parsed
	}

	result, err := h.useCase.Execute(&generateDates.Request{
		StartDate: start,
		Days:      days,
	})
	if err != nil {
		h.logger.Warn("GET /business/{slug}/dates - Failed to generate dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDays)
		return
	}

	h.logger.Info("GET /business/{slug}/dates - Dates generated successfully: count=%d", len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
