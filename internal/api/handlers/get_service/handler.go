package get_service

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

// Handle GET /api/v1/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]

	service, err := h.service.GetService(r.Context(), serviceID)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("GET /services/{id} - %v: service_id=%s", err, serviceID)
			return
		}
		h.logger.Error("GET /services/{id} - Failed to get service: service_id=%s, error=%v", serviceID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromService(service))
}
