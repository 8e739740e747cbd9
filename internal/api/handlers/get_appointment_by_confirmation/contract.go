package get_appointment_by_confirmation

import (
	"context"

	"github.com/m04kA/LashBookingService/internal/domain"
)

type AppointmentService interface {
	GetByConfirmationCode(ctx context.Context, code string) (*domain.Appointment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
