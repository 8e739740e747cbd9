package list_business_hours

import (
	"net/http"

	"github.com/m04kA/LashBookingService/internal/api/handlers"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hours, err := h.service.ListBusinessHours(r.Context())
	if err != nil {
		h.logger.Error("GET /business-hours - Failed to list business hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomain(hours))
}
