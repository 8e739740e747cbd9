package get_available_slots

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/LashBookingService/internal/domain"
)

// UseCase use case для получения слотов на дату
type UseCase struct {
	engine AvailabilityEngine
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(engine AvailabilityEngine, logger Logger) *UseCase {
	return &UseCase{
		engine: engine,
		logger: logger,
	}
}

// Execute возвращает 45-минутные слоты дня с признаком доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if strings.TrimSpace(req.Date) == "" {
		return nil, domain.MissingParameter("date")
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: invalid date %q", req.Date)
		return nil, err
	}

	// 2. Перечисляем слоты
	slots, err := uc.engine.EnumerateSlots(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to enumerate slots for %s: %v", domain.FormatDate(date), err)
		return nil, fmt.Errorf("%w: failed to enumerate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %s has %d slots", domain.FormatDate(date), len(slots))

	return &Response{
		Date:  date,
		Slots: slots,
	}, nil
}
