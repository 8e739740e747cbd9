package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/LashBookingService/internal/domain"
)

// AvailabilityEngine перечисление слотов дня
type AvailabilityEngine interface {
	EnumerateSlots(ctx context.Context, date time.Time) ([]domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
