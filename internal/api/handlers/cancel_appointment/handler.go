package cancel_appointment

import (
	"net/http"

	"github.com/m04kA/LashBookingService/internal/api/handlers"
)

const msgInvalidAppointmentID = "invalid appointment id"

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

// Handle DELETE /api/v1/appointments/{appointmentId}
// Запись не удаляется, а переводится в cancelled.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathInt64(r, "appointmentId")
	if err != nil {
		h.logger.Warn("DELETE /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	appt, err := h.service.Cancel(r.Context(), appointmentID)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("DELETE /appointments/{id} - %v: appointment_id=%d", err, appointmentID)
			return
		}
		h.logger.Error("DELETE /appointments/{id} - Failed to cancel appointment: appointment_id=%d, error=%v",
			appointmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /appointments/{id} - Appointment cancelled successfully: appointment_id=%d", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromAppointment(appt))
}
