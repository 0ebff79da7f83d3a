package get_professionals

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sessojunior/agendamento/internal/api/handlers"
	"github.com/sessojunior/agendamento/internal/service/catalog"
	"github.com/sessojunior/agendamento/internal/service/catalog/models"
)

const (
	msgMissingSlug      = "identificador do negócio é obrigatório"
	msgBusinessNotFound = "negócio não encontrado"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ProfessionalsResponse HTTP response model
type ProfessionalsResponse struct {
	Professionals []models.ProfessionalResponse `json:"professionals"`
}

// Handle GET /api/v1/business/{slug}/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if slug == "" {
		h.logger.Warn("GET /business/{slug}/professionals - Missing slug")
		handlers.RespondBadRequest(w, msgMissingSlug)
		return
	}

	professionals, err := h.service.ListProfessionals(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrBusinessNotFound):
			h.logger.Warn("GET /business/{slug}/professionals - Business not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /business/{slug}/professionals - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingSlug)

		default:
			h.logger.Error("GET /business/{slug}/professionals - Failed to list professionals: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /business/{slug}/professionals - Professionals retrieved successfully: slug=%s, count=%d", slug, len(professionals))
	handlers.RespondJSON(w, http.StatusOK, ProfessionalsResponse{Professionals: professionals})
}
