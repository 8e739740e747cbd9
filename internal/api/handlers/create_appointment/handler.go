package create_appointment

import (
	"net/http"

	"github.com/m04kA/LashBookingService/internal/api/handlers"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if verr := handlers.ValidateStruct(req); verr != nil {
		h.logger.Warn("POST /appointments - Validation failed: %v", verr)
		handlers.RespondDomainError(w, verr)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("POST /appointments - Rejected: email=%s, date=%s, time=%s: %v",
				req.Email, req.AppointmentDate, req.AppointmentTime, err)
			return
		}
		h.logger.Error("POST /appointments - Failed to create appointment: email=%s, error=%v", req.Email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, code=%s",
		result.Appointment.ID, result.Appointment.ConfirmationCode)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
