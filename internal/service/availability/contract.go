package availability

import (
	"context"
	"time"

	"github.com/m04kA/LashBookingService/internal/domain"
)

// ScheduleRepository источник часов работы и заблокированных дат
type ScheduleRepository interface {
	GetBusinessHours(ctx context.Context, weekday domain.Weekday) (*domain.BusinessHours, error)
	IsDateBlocked(ctx context.Context, date time.Time) (bool, error)
}

// AppointmentRepository источник активных записей на дату
type AppointmentRepository interface {
	GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error)
}

// Metrics учет отказов по причинам
type Metrics interface {
	AvailabilityRejected(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
