package get_time_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sessojunior/agendamento/internal/api/handlers"
	resolveSlots "github.com/sessojunior/agendamento/internal/usecase/resolve_slots"
)

const (
	msgMissingSlug      = "identificador do negócio é obrigatório"
	msgMissingServiceID = "ID do serviço é obrigatório"
	msgMissingDate      = "data é obrigatória"
	msgInvalidDate      = "formato de data inválido, esperado YYYY-MM-DD"
)

type Handler struct {
	useCase ResolveSlotsUseCase
	logger  Logger
}

func NewHandler(useCase ResolveSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/business/{slug}/time-slots
// Query params: serviceId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if slug == "" {
		h.logger.Warn("GET /business/{slug}/time-slots - Missing slug")
		handlers.RespondBadRequest(w, msgMissingSlug)
		return
	}

	serviceID := r.URL.Query().Get("serviceId")
	if serviceID == "" {
		h.logger.Warn("GET /business/{slug}/time-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /business/{slug}/time-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(slug, serviceID, dateStr)
	if err != nil {
		h.logger.Warn("GET /business/{slug}/time-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, resolveSlots.ErrInvalidInput):
			h.logger.Warn("GET /business/{slug}/time-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /business/{slug}/time-slots - Failed to resolve slots: slug=%s, service_id=%s, error=%v",
				slug, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /business/{slug}/time-slots - Slots resolved successfully: slug=%s, service_id=%s, slots_count=%d",
		slug, serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
