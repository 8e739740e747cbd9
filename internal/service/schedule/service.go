package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/LashBookingService/internal/domain"
)

// Service чтение недельного расписания и заблокированных дат
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// ListBusinessHours возвращает часы работы по дням недели
func (s *Service) ListBusinessHours(ctx context.Context) ([]*domain.BusinessHours, error) {
	hours, err := s.scheduleRepo.ListBusinessHours(ctx)
	if err != nil {
		s.logger.Error("ListBusinessHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBusinessHours - repository error: %v", ErrInternal, err)
	}
	return hours, nil
}

// ListBlockedDates возвращает заблокированные даты, начиная с from (nil - все)
func (s *Service) ListBlockedDates(ctx context.Context, from *time.Time) ([]*domain.BlockedDate, error) {
	dates, err := s.scheduleRepo.ListBlockedDates(ctx, from)
	if err != nil {
		s.logger.Error("ListBlockedDates: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlockedDates - repository error: %v", ErrInternal, err)
	}
	return dates, nil
}
