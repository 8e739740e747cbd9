package get_appointment_by_confirmation

import (
	"net/http"

	"github.com/m04kA/LashBookingService/internal/api/handlers"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/by-confirmation?code=HLS-XXXXXXXX
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")

	appt, err := h.service.GetByConfirmationCode(r.Context(), code)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("GET /appointments/by-confirmation - %v: code=%q", err, code)
			return
		}
		h.logger.Error("GET /appointments/by-confirmation - Failed to get appointment: code=%q, error=%v", code, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromAppointment(appt))
}
