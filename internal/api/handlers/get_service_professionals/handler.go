package get_service_professionals

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
	msgMissingServiceID = "ID do serviço é obrigatório"
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

// Handle GET /api/v1/business/{slug}/services/{serviceId}/professionals
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	slug := vars["slug"]
	if slug == "" {
		h.logger.Warn("GET /business/{slug}/services/{serviceId}/professionals - Missing slug")
		handlers.RespondBadRequest(w, msgMissingSlug)
		return
	}

	serviceID := vars["serviceId"]
	if serviceID == "" {
		h.logger.Warn("GET /business/{slug}/services/{serviceId}/professionals - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	professionals, err := h.service.ListServiceProfessionals(r.Context(), slug, serviceID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrBusinessNotFound):
			h.logger.Warn("GET /business/{slug}/services/{serviceId}/professionals - Business not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /business/{slug}/services/{serviceId}/professionals - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingServiceID)

		default:
			h.logger.Error("GET /business/{slug}/services/{serviceId}/professionals - Failed to list professionals: slug=%s, service_id=%s, error=%v",
				slug, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /business/{slug}/services/{serviceId}/professionals - Professionals retrieved successfully: slug=%s, service_id=%s, count=%d",
		slug, serviceID, len(professionals))
	handlers.RespondJSON(w, http.StatusOK, ProfessionalsResponse{Professionals: professionals})
}
