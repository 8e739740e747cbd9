package pricing

import (
	"context"

	"github.com/m04kA/LashBookingService/internal/domain"
)

// CatalogRepository пакетная загрузка услуг и дополнительных опций
type CatalogRepository interface {
	GetServicesByIDs(ctx context.Context, ids []string) ([]*domain.Service, error)
	GetAddOnsByIDs(ctx context.Context, ids []string) ([]*domain.AddOn, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
