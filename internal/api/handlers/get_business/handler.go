package get_business

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sessojunior/agendamento/internal/api/handlers"
	"github.com/sessojunior/agendamento/internal/service/catalog"
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

// Handle GET /api/v1/business/{slug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	if slug == "" {
		h.logger.Warn("GET /business/{slug} - Missing slug")
		handlers.RespondBadRequest(w, msgMissingSlug)
		return
	}

	business, err := h.service.GetBusiness(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrBusinessNotFound):
			h.logger.Warn("GET /business/{slug} - Business not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /business/{slug} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingSlug)

		default:
			h.logger.Error("GET /business/{slug} - Failed to get business: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /business/{slug} - Business retrieved successfully: slug=%s", slug)
	handlers.RespondJSON(w, http.StatusOK, business)
}
