package reschedule_appointment

import "github.com/m04kA/LashBookingService/internal/domain"

// Request перенос записи на новые дату и время
type Request struct {
	AppointmentID int64
	Date          string // YYYY-MM-DD
	Time          string // HH:MM
}

// Response запись после переноса
type Response struct {
	Appointment *domain.Appointment
}
