package list_business_hours

import (
	"context"

	"github.com/m04kA/LashBookingService/internal/domain"
)

type ScheduleService interface {
	ListBusinessHours(ctx context.Context) ([]*domain.BusinessHours, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
