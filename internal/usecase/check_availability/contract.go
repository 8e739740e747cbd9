package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/LashBookingService/pkg/types"
)

// AvailabilityEngine проверка интервала на дату
type AvailabilityEngine interface {
	ValidateCandidate(ctx context.Context, date time.Time, start types.TimeString, duration int, excludeID *int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
