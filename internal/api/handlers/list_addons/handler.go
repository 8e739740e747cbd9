package list_addons

import (
	"net/http"

	"github.com/m04kA/LashBookingService/internal/api/handlers"
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

// Handle GET /api/v1/addons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	addOns, err := h.service.ListAddOns(r.Context())
	if err != nil {
		h.logger.Error("GET /addons - Failed to list add-ons: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := make([]handlers.AddOnResponse, 0, len(addOns))
	for _, a := range addOns {
		response = append(response, handlers.FromAddOn(a))
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
