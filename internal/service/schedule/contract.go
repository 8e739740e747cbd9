package schedule

import (
	"context"
	"time"

	"github.com/m04kA/LashBookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	ListBusinessHours(ctx context.Context) ([]*domain.BusinessHours, error)
	ListBlockedDates(ctx context.Context, from *time.Time) ([]*domain.BlockedDate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
