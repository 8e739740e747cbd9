package get_addon

import (
	"context"

	"github.com/m04kA/LashBookingService/internal/domain"
)

type CatalogService interface {
	GetAddOn(ctx context.Context, id string) (*domain.AddOn, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
