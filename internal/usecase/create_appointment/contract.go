package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/LashBookingService/internal/domain"
	"github.com/m04kA/LashBookingService/internal/service/pricing"
	"github.com/m04kA/LashBookingService/pkg/types"
)

// PricingAggregator расчет длительности и стоимости
type PricingAggregator interface {
	ComputeTotals(ctx context.Context, selections []pricing.ClientSelection, needsTransport bool) (*pricing.Totals, error)
}

// AvailabilityEngine проверка интервала на дату
type AvailabilityEngine interface {
	ValidateCandidate(ctx context.Context, date time.Time, start types.TimeString, duration int, excludeID *int64) error
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	UpsertByEmail(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// CodeGenerator генератор кодов подтверждения
type CodeGenerator interface {
	Generate() (string, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier уведомления о новой записи. Вызывается асинхронно, ошибки только логируются.
type Notifier interface {
	AppointmentCreated(ctx context.Context, appt *domain.Appointment)
}

// Metrics счетчик созданных записей
type Metrics interface {
	AppointmentCreated(needsTransport bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
