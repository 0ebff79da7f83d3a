package get_available_professionals

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sessojunior/agendamento/internal/api/handlers"
	availableProfessionals "github.com/sessojunior/agendamento/internal/usecase/available_professionals"
)

const (
	msgMissingSlug      = "identificador do negócio é obrigatório"
	msgMissingServiceID = "ID do serviço é obrigatório"
	msgMissingDate      = "data é obrigatória"
	msgMissingTime      = "horário é obrigatório"
	msgInvalidParams    = "parâmetros inválidos, esperado date=YYYY-MM-DD e time=HH:MM"
)

type Handler struct {
	useCase AvailableProfessionalsUseCase
	logger  Logger
}

func NewHandler(useCase AvailableProfessionalsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/business/{slug}/available-professionals
// Query params: serviceId (required), date (required, YYYY-MM-DD),
// time (required, HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if slug == "" {
		h.logger.Warn("GET /business/{slug}/available-professionals - Missing slug")
		handlers.RespondBadRequest(w, msgMissingSlug)
		return
	}

	serviceID := r.URL.Query().Get("serviceId")
	if serviceID == "" {
		h.logger.Warn("GET /business/{slug}/available-professionals - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /business/{slug}/available-professionals - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	timeStr := r.URL.Query().Get("time")
	if timeStr == "" {
		h.logger.Warn("GET /business/{slug}/available-professionals - Missing time")
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	useCaseReq, err := ToUseCaseRequest(slug, serviceID, dateStr, timeStr)
	if err != nil {
		h.logger.Warn("GET /business/{slug}/available-professionals - Invalid params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, availableProfessionals.ErrInvalidInput):
			h.logger.Warn("GET /business/{slug}/available-professionals - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /business/{slug}/available-professionals - Failed to list professionals: slug=%s, service_id=%s, error=%v",
				slug, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /business/{slug}/available-professionals - Professionals resolved successfully: slug=%s, service_id=%s, count=%d",
		slug, serviceID, len(result.Professionals))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
