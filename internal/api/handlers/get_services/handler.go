package get_services

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

// ServicesResponse HTTP response model
type ServicesResponse struct {
	Services []models.ServiceResponse `json:"services"`
}

// Handle GET /api/v1/business/{slug}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if slug == "" {
		h.logger.Warn("GET /business/{slug}/services - Missing slug")
		handlers.RespondBadRequest(w, msgMissingSlug)
		return
	}

	services, err := h.service.ListServices(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrBusinessNotFound):
			h.logger.Warn("GET /business/{slug}/services - Business not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /business/{slug}/services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingSlug)

		default:
			h.logger.Error("GET /business/{slug}/services - Failed to list services: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /business/{slug}/services - Services retrieved successfully: slug=%s, count=%d", slug, len(services))
	handlers.RespondJSON(w, http.StatusOK, ServicesResponse{Services: services})
}
