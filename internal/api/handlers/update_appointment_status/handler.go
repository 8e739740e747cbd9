package update_appointment_status

import (
	"net/http"

	"github.com/m04kA/LashBookingService/internal/api/handlers"
	"github.com/m04kA/LashBookingService/internal/domain"
)

const (
	msgInvalidAppointmentID = "invalid appointment id"
	msgInvalidRequestBody   = "invalid request body"
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

// Handle PATCH /api/v1/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathInt64(r, "appointmentId")
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if verr := handlers.ValidateStruct(req); verr != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Validation failed: %v", verr)
		handlers.RespondDomainError(w, verr)
		return
	}

	appt, err := h.service.UpdateStatus(r.Context(), appointmentID, domain.AppointmentStatus(req.Status))
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("PATCH /appointments/{id}/status - %v: appointment_id=%d", err, appointmentID)
			return
		}
		h.logger.Error("PATCH /appointments/{id}/status - Failed to update status: appointment_id=%d, error=%v",
			appointmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - Status updated successfully: appointment_id=%d, status=%s",
		appointmentID, appt.Status)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromAppointment(appt))
}
