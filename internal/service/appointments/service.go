package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/LashBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/LashBookingService/internal/infra/storage/appointment"
)

// Service чтение записей и смена их статуса
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("GetByID", err)
	}
	return appt, nil
}

// GetByConfirmationCode получает запись по коду подтверждения (регистр не важен)
func (s *Service) GetByConfirmationCode(ctx context.Context, code string) (*domain.Appointment, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, domain.MissingParameter("code")
	}

	appt, err := s.appointmentRepo.GetByConfirmationCode(ctx, code)
	if err != nil {
		return nil, s.mapRepoError("GetByConfirmationCode", err)
	}
	return appt, nil
}

// List возвращает записи по фильтру
func (s *Service) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		return nil, domain.InvalidInput("to must not be before from")
	}

	// Записи и их клиенты читаются из одного снимка
	var appts []*domain.Appointment
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		appts, err = s.appointmentRepo.List(ctx, filter)
		return err
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return appts, nil
}

// UpdateStatus переводит запись в новый статус по таблице переходов
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error) {
	s.logger.Info("UpdateStatus: appointment id=%d -> %s", id, status)

	var updated *domain.Appointment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		appt, err := s.appointmentRepo.GetByID(ctx, id)
		if err != nil {
			return s.mapRepoError("UpdateStatus", err)
		}

		if !appt.Status.CanTransitionTo(status) {
			s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for appointment id=%d", appt.Status, status, id)
			return domain.NewError(domain.KindInvalidStatusTransition,
				fmt.Sprintf("Cannot change status from %s to %s", appt.Status, status))
		}

		// Обновляем только если статус не изменился с момента чтения
		err = s.appointmentRepo.UpdateStatus(ctx, id, appt.Status, status)
		if errors.Is(err, appointmentRepo.ErrStatusChanged) {
			s.logger.Warn("UpdateStatus: appointment id=%d changed concurrently, %s is stale", id, appt.Status)
			return domain.NewError(domain.KindInvalidStatusTransition,
				fmt.Sprintf("Appointment status changed from %s concurrently, retry the request", appt.Status))
		}
		if err != nil {
			return s.mapRepoError("UpdateStatus", err)
		}

		updated, err = s.appointmentRepo.GetByID(ctx, id)
		if err != nil {
			return s.mapRepoError("UpdateStatus", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: appointment id=%d is now %s", id, status)
	return updated, nil
}

// Cancel отменяет запись
func (s *Service) Cancel(ctx context.Context, id int64) (*domain.Appointment, error) {
	return s.UpdateStatus(ctx, id, domain.StatusCancelled)
}

func (s *Service) mapRepoError(op string, err error) error {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		return err
	}
	if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
		s.logger.Warn("%s: appointment not found", op)
		return domain.ErrAppointmentNotFound
	}
	if errors.Is(err, appointmentRepo.ErrSlotTaken) {
		s.logger.Warn("%s: slot is taken by another active appointment", op)
		return domain.ErrSlotNotAvailable
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
