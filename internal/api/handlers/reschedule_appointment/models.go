package reschedule_appointment

import rescheduleAppointment "github.com/m04kA/LashBookingService/internal/usecase/reschedule_appointment"

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	AppointmentDate string `json:"appointmentDate" validate:"required"` // "2025-03-22"
	AppointmentTime string `json:"appointmentTime" validate:"required"` // "10:00"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleRequest) ToUseCaseRequest(appointmentID int64) *rescheduleAppointment.Request {
	return &rescheduleAppointment.Request{
		AppointmentID: appointmentID,
		Date:          r.AppointmentDate,
		Time:          r.AppointmentTime,
	}
}
