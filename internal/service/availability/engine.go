package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/LashBookingService/internal/domain"
	scheduleRepo "github.com/m04kA/LashBookingService/internal/infra/storage/schedule"
	"github.com/m04kA/LashBookingService/pkg/types"
)

// Engine решает, можно ли занять интервал на дату, и перечисляет слоты дня.
// Состояния не хранит: каждый вызов читает расписание и записи заново,
// внутри транзакции из контекста, если она есть.
type Engine struct {
	scheduleRepo    ScheduleRepository
	appointmentRepo AppointmentRepository
	policy          domain.MissingHoursPolicy
	metrics         Metrics
	logger          Logger
}

// NewEngine создает движок доступности
func NewEngine(
	scheduleRepo ScheduleRepository,
	appointmentRepo AppointmentRepository,
	policy domain.MissingHoursPolicy,
	metrics Metrics,
	logger Logger,
) *Engine {
	if policy == "" {
		policy = domain.MissingHoursUnconstrained
	}
	return &Engine{
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		policy:          policy,
		metrics:         metrics,
		logger:          logger,
	}
}

// ValidateCandidate проверяет интервал [start, start+duration) на дату.
// Возвращает nil, если интервал свободен, иначе *domain.Error с причиной отказа.
// Проверки идут по порядку, возвращается первая неудачная:
// заблокированная дата, часы работы, пересечение с активными записями.
// excludeID исключает запись из проверки пересечений (перенос существующей записи).
func (e *Engine) ValidateCandidate(
	ctx context.Context,
	date time.Time,
	start types.TimeString,
	duration int,
	excludeID *int64,
) error {
	if duration <= 0 {
		return e.reject(domain.ErrInvalidDuration)
	}
	startMinutes := start.Minutes()
	if startMinutes < 0 {
		return e.reject(domain.ErrInvalidTimeFormat)
	}

	// 1. Заблокированная дата
	blocked, err := e.scheduleRepo.IsDateBlocked(ctx, date)
	if err != nil {
		e.logger.Error("ValidateCandidate: failed to check blocked date %s: %v", domain.FormatDate(date), err)
		return fmt.Errorf("%w: ValidateCandidate - blocked date: %w", ErrInternal, err)
	}
	if blocked {
		return e.reject(domain.ErrDateBlocked)
	}

	// 2. Часы работы
	hours, err := e.scheduleRepo.GetBusinessHours(ctx, domain.WeekdayOf(date))
	switch {
	case errors.Is(err, scheduleRepo.ErrHoursNotFound):
		if e.policy == domain.MissingHoursClosed {
			return e.reject(domain.ErrBusinessClosed)
		}
	case err != nil:
		e.logger.Error("ValidateCandidate: failed to get business hours for %s: %v", domain.FormatDate(date), err)
		return fmt.Errorf("%w: ValidateCandidate - business hours: %w", ErrInternal, err)
	case !hours.IsOpen:
		return e.reject(domain.ErrBusinessClosed)
	case !hours.Contains(start):
		return e.reject(domain.ErrOutsideBusinessHours)
	}

	// 3. Пересечение с активными записями
	appointments, err := e.appointmentRepo.GetActiveByDate(ctx, date)
	if err != nil {
		e.logger.Error("ValidateCandidate: failed to get appointments for %s: %v", domain.FormatDate(date), err)
		return fmt.Errorf("%w: ValidateCandidate - appointments: %w", ErrInternal, err)
	}

	for _, a := range appointments {
		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		if !a.IsActive() {
			continue
		}
		if a.Overlaps(startMinutes, duration) {
			return e.reject(domain.ErrSlotNotAvailable)
		}
	}

	return nil
}

// EnumerateSlots возвращает 45-минутные слоты дня по возрастанию времени.
// Для заблокированной даты, выходного дня или дня без расписания список пуст.
// Слот занят только если активная запись начинается ровно в его время.
func (e *Engine) EnumerateSlots(ctx context.Context, date time.Time) ([]domain.Slot, error) {
	slots := make([]domain.Slot, 0)

	blocked, err := e.scheduleRepo.IsDateBlocked(ctx, date)
	if err != nil {
		e.logger.Error("EnumerateSlots: failed to check blocked date %s: %v", domain.FormatDate(date), err)
		return nil, fmt.Errorf("%w: EnumerateSlots - blocked date: %w", ErrInternal, err)
	}
	if blocked {
		return slots, nil
	}

	hours, err := e.scheduleRepo.GetBusinessHours(ctx, domain.WeekdayOf(date))
	if errors.Is(err, scheduleRepo.ErrHoursNotFound) {
		return slots, nil
	}
	if err != nil {
		e.logger.Error("EnumerateSlots: failed to get business hours for %s: %v", domain.FormatDate(date), err)
		return nil, fmt.Errorf("%w: EnumerateSlots - business hours: %w", ErrInternal, err)
	}
	if !hours.IsOpen {
		return slots, nil
	}

	appointments, err := e.appointmentRepo.GetActiveByDate(ctx, date)
	if err != nil {
		e.logger.Error("EnumerateSlots: failed to get appointments for %s: %v", domain.FormatDate(date), err)
		return nil, fmt.Errorf("%w: EnumerateSlots - appointments: %w", ErrInternal, err)
	}

	taken := make(map[int]struct{}, len(appointments))
	for _, a := range appointments {
		if a.IsActive() {
			taken[a.StartMinutes()] = struct{}{}
		}
	}

	closeMinutes := hours.CloseTime.Minutes()
	for m := hours.OpenTime.Minutes(); m < closeMinutes; m += domain.SlotDurationMinutes {
		start, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			break
		}
		_, busy := taken[m]
		slots = append(slots, domain.Slot{Time: start, Available: !busy})
	}

	return slots, nil
}

func (e *Engine) reject(err *domain.Error) error {
	if e.metrics != nil {
		e.metrics.AvailabilityRejected(string(err.Kind))
	}
	return err
}
