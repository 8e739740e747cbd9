package check_availability

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/LashBookingService/internal/domain"
)

// UseCase use case проверки доступности времени
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

// Execute проверяет, свободен ли интервал.
// Ошибки формата и отсутствующие параметры возвращаются как ошибка,
// бизнес-отказ (заблокировано, закрыто, занято) как Available=false с причиной.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if strings.TrimSpace(req.Date) == "" || strings.TrimSpace(req.Time) == "" {
		return nil, domain.MissingParameter("appointmentDate and appointmentTime")
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	start, err := domain.ParseTime(req.Time)
	if err != nil {
		return nil, err
	}

	duration := domain.DefaultCheckDurationMinutes
	if req.Duration != nil {
		duration = *req.Duration
	}
	if duration <= 0 {
		return nil, domain.ErrInvalidDuration
	}

	uc.logger.Info("CheckAvailability: date=%s, time=%s, duration=%d", domain.FormatDate(date), start, duration)

	// 2. Проверка
	err = uc.engine.ValidateCandidate(ctx, date, start, duration, nil)
	if err == nil {
		return &Response{Available: true}, nil
	}

	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		uc.logger.Info("CheckAvailability: %s %s rejected: %s", domain.FormatDate(date), start, domainErr.Kind)
		return &Response{
			Available: false,
			Reason:    domainErr.Error(),
			Code:      domainErr.Kind,
		}, nil
	}

	uc.logger.Error("CheckAvailability: engine error: %v", err)
	return nil, fmt.Errorf("%w: engine error: %v", ErrInternal, err)
}
