package get_available_slots

import (
	"net/http"

	"github.com/m04kA/LashBookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/LashBookingService/internal/usecase/get_available_slots"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: dateStr})
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("GET /appointments/available-slots - %v: date=%q", err, dateStr)
			return
		}
		h.logger.Error("GET /appointments/available-slots - Failed to get slots: date=%q, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments/available-slots - Slots retrieved successfully: date=%s, slots_count=%d",
		dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
