package get_agenda

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sessojunior/agendamento/internal/api/handlers"
	buildAgenda "github.com/sessojunior/agendamento/internal/usecase/build_agenda"
)

const (
	msgMissingSlug           = "identificador do negócio é obrigatório"
	msgMissingProfessionalID = "ID do profissional é obrigatório"
	msgMissingDate           = "data é obrigatória"
	msgInvalidDate           = "formato de data inválido, esperado YYYY-MM-DD"
)

type Handler struct {
	useCase BuildAgendaUseCase
	logger  Logger
}

func NewHandler(useCase BuildAgendaUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/business/{slug}/professionals/{professionalId}/agenda
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	slug := vars["slug"]
	if slug == "" {
		h.logger.Warn("GET /business/{slug}/professionals/{professionalId}/agenda - Missing slug")
		handlers.RespondBadRequest(w, msgMissingSlug)
		return
	}

	professionalID := vars["professionalId"]
	if professionalID == "" {
		h.logger.Warn("GET /business/{slug}/professionals/{professionalId}/agenda - Missing professional ID")
		handlers.RespondBadRequest(w, msgMissingProfessionalID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /business/{slug}/professionals/{professionalId}/agenda - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(slug, professionalID, dateStr)
	if err != nil {
		h.logger.Warn("GET /business/{slug}/professionals/{professionalId}/agenda - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, buildAgenda.ErrInvalidInput):
			h.logger.Warn("GET /business/{slug}/professionals/{professionalId}/agenda - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /business/{slug}/professionals/{professionalId}/agenda - Failed to build agenda: slug=%s, professional_id=%s, error=%v",
				slug, professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /business/{slug}/professionals/{professionalId}/agenda - Agenda built successfully: slug=%s, professional_id=%s, events_count=%d",
		slug, professionalID, len(result.Events))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
