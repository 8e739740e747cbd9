package list_blocked_dates

import (
	"context"
	"time"

	"github.com/m04kA/LashBookingService/internal/domain"
)

type ScheduleService interface {
	ListBlockedDates(ctx context.Context, from *time.Time) ([]*domain.BlockedDate, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
