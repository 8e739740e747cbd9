package get_addon

import (
	"net/http"

	"github.com/gorilla/mux"

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

// Handle GET /api/v1/addons/{addOnId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	addOnID := mux.Vars(r)["addOnId"]

	addOn, err := h.service.GetAddOn(r.Context(), addOnID)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("GET /addons/{id} - %v: addon_id=%s", err, addOnID)
			return
		}
		h.logger.Error("GET /addons/{id} - Failed to get add-on: addon_id=%s, error=%v", addOnID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromAddOn(addOn))
}
