package catalog

import (
	"context"

	"github.com/m04kA/LashBookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	ListServices(ctx context.Context, activeOnly bool) ([]*domain.Service, error)
	GetServiceByID(ctx context.Context, id string) (*domain.Service, error)
	ListAddOns(ctx context.Context, activeOnly bool) ([]*domain.AddOn, error)
	GetAddOnByID(ctx context.Context, id string) (*domain.AddOn, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
