package list_blocked_dates

import (
	"net/http"
	"time"

	"github.com/m04kA/LashBookingService/internal/api/handlers"
	"github.com/m04kA/LashBookingService/internal/domain"
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

// Handle GET /api/v1/blocked-dates?from=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var from *time.Time
	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			h.logger.Warn("GET /blocked-dates - Invalid from: %q", raw)
			handlers.RespondDomainError(w, err)
			return
		}
		from = &parsed
	}

	dates, err := h.service.ListBlockedDates(r.Context(), from)
	if err != nil {
		h.logger.Error("GET /blocked-dates - Failed to list blocked dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromDomain(dates))
}
