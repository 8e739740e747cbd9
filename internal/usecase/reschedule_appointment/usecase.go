package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/LashBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/LashBookingService/internal/infra/storage/appointment"
)

// UseCase use case переноса записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	engine          AvailabilityEngine
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	engine AvailabilityEngine,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		engine:          engine,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute переносит активную запись. Сама запись при проверке пересечений не учитывается,
// поэтому сдвиг внутри собственного интервала допустим.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.AppointmentID <= 0 {
		return nil, domain.MissingParameter("id")
	}
	if strings.TrimSpace(req.Date) == "" {
		return nil, domain.MissingParameter("appointmentDate")
	}
	if strings.TrimSpace(req.Time) == "" {
		return nil, domain.MissingParameter("appointmentTime")
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, err
	}
	start, err := domain.ParseTime(req.Time)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: id=%d -> %s %s", req.AppointmentID, domain.FormatDate(date), start)

	// 2. Проверка и обновление в сериализуемой транзакции
	var updated *domain.Appointment
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Текущая запись
		appt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			return uc.mapRepoError("get appointment", err)
		}

		// 2.2. Переносить можно только активные записи
		if !appt.IsActive() {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d has status %s", appt.ID, appt.Status)
			return domain.NewError(domain.KindInvalidStatusTransition,
				fmt.Sprintf("Cannot reschedule appointment with status %s", appt.Status))
		}

		// 2.3. Доступность нового интервала без учета самой записи
		if err := uc.engine.ValidateCandidate(txCtx, date, start, appt.TotalDuration, &appt.ID); err != nil {
			return err
		}

		// 2.4. Обновление
		if err := uc.appointmentRepo.UpdateSchedule(txCtx, appt.ID, date, start); err != nil {
			return uc.mapRepoError("update schedule", err)
		}

		updated, err = uc.appointmentRepo.GetByID(txCtx, appt.ID)
		if err != nil {
			return uc.mapRepoError("reload appointment", err)
		}
		return nil
	})
	if err != nil {
		var domainErr *domain.Error
		if errors.As(err, &domainErr) {
			uc.logger.Warn("RescheduleAppointment: rejected id=%d: %v", req.AppointmentID, err)
		}
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: appointment id=%d moved to %s %s", updated.ID, domain.FormatDate(updated.Date), updated.Time)

	return &Response{Appointment: updated}, nil
}

func (uc *UseCase) mapRepoError(step string, err error) error {
	switch {
	case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
		return domain.ErrAppointmentNotFound
	case errors.Is(err, appointmentRepo.ErrSlotTaken):
		return domain.ErrSlotNotAvailable
	}
	uc.logger.Error("RescheduleAppointment: %s failed: %v", step, err)
	return fmt.Errorf("%w: %s: %w", ErrInternal, step, err)
}
