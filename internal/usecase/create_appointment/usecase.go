package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/LashBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/LashBookingService/internal/infra/storage/appointment"
	"github.com/m04kA/LashBookingService/internal/service/pricing"
	"github.com/m04kA/LashBookingService/pkg/types"
)

// maxCodeAttempts сколько раз генерировать новый код при коллизии
const maxCodeAttempts = 3

// UseCase use case создания записи
type UseCase struct {
	pricing         PricingAggregator
	engine          AvailabilityEngine
	customerRepo    CustomerRepository
	appointmentRepo AppointmentRepository
	codes           CodeGenerator
	txManager       TransactionManager
	notifier        Notifier
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	pricing PricingAggregator,
	engine AvailabilityEngine,
	customerRepo CustomerRepository,
	appointmentRepo AppointmentRepository,
	codes CodeGenerator,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		pricing:         pricing,
		engine:          engine,
		customerRepo:    customerRepo,
		appointmentRepo: appointmentRepo,
		codes:           codes,
		txManager:       txManager,
		notifier:        notifier,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute создает запись.
// Проверка доступности и вставка выполняются в одной сериализуемой транзакции;
// при конфликте сериализации менеджер транзакций повторяет их целиком.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	date, start, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateAppointment: email=%s, date=%s, time=%s, clients=%d, transport=%t",
		req.Email, domain.FormatDate(date), start, len(req.Clients), req.NeedsTransport)

	// 2. Расчет длительности и стоимости
	selections := make([]pricing.ClientSelection, 0, len(req.Clients))
	for _, c := range req.Clients {
		selections = append(selections, pricing.ClientSelection{ServiceID: c.ServiceID, AddOnIDs: c.AddOnIDs})
	}

	totals, err := uc.pricing.ComputeTotals(ctx, selections, req.NeedsTransport)
	if err != nil {
		return nil, uc.passDomainError("compute totals", err)
	}

	// 3. Клиент, проверка доступности и вставка в сериализуемой транзакции
	var created *domain.Appointment
	for attempt := 1; attempt <= maxCodeAttempts; attempt++ {
		created, err = uc.create(ctx, req, date, start, totals)
		if !errors.Is(err, appointmentRepo.ErrDuplicateConfirmationCode) {
			break
		}
		uc.logger.Warn("CreateAppointment: confirmation code collision, attempt %d/%d", attempt, maxCodeAttempts)
	}
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrDuplicateConfirmationCode) {
			return nil, fmt.Errorf("%w: could not generate unique confirmation code", ErrInternal)
		}
		return nil, uc.passDomainError("create", err)
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d code=%s total=%s duration=%d",
		created.ID, created.ConfirmationCode, created.TotalPrice.StringFixed(2), created.TotalDuration)

	// 4. Метрики и уведомления (уведомления не влияют на результат)
	if uc.metrics != nil {
		uc.metrics.AppointmentCreated(created.NeedsTransport)
	}
	if uc.notifier != nil {
		go uc.notifier.AppointmentCreated(context.WithoutCancel(ctx), created)
	}

	return &Response{
		Appointment: created,
		Totals:      totals,
	}, nil
}

func (uc *UseCase) create(
	ctx context.Context,
	req *Request,
	date time.Time,
	start types.TimeString,
	totals *pricing.Totals,
) (*domain.Appointment, error) {
	var created *domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Создаем или обновляем клиента по email
		customer, err := uc.customerRepo.UpsertByEmail(txCtx, &domain.Customer{
			FirstName:   strings.TrimSpace(req.FirstName),
			LastName:    strings.TrimSpace(req.LastName),
			Email:       strings.ToLower(strings.TrimSpace(req.Email)),
			Phone:       strings.TrimSpace(req.Phone),
			IsReturning: req.IsReturning,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to upsert customer: %v", err)
			return fmt.Errorf("%w: failed to upsert customer: %w", ErrInternal, err)
		}

		// 3.2. Проверяем доступность по данным внутри транзакции (строки блокируются)
		if err := uc.engine.ValidateCandidate(txCtx, date, start, totals.Duration, nil); err != nil {
			return err
		}

		// 3.3. Код подтверждения
		code, err := uc.codes.Generate()
		if err != nil {
			return fmt.Errorf("%w: failed to generate confirmation code: %v", ErrInternal, err)
		}

		// 3.4. Запись с клиентами
		appt := &domain.Appointment{
			CustomerID:       customer.ID,
			Customer:         customer,
			Date:             date,
			Time:             start,
			Location:         strings.TrimSpace(req.Location),
			NeedsTransport:   req.NeedsTransport,
			Status:           domain.StatusPending,
			TotalDuration:    totals.Duration,
			TotalPrice:       totals.Price,
			Notes:            req.Notes,
			ConfirmationCode: code,
			Clients:          buildClients(totals),
		}

		created, err = uc.appointmentRepo.Create(txCtx, appt)
		switch {
		case errors.Is(err, appointmentRepo.ErrSlotTaken):
			uc.logger.Warn("CreateAppointment: slot %s %s taken concurrently", domain.FormatDate(date), start)
			return domain.ErrSlotNotAvailable
		case errors.Is(err, appointmentRepo.ErrDuplicateConfirmationCode):
			return err
		case err != nil:
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}
		return nil
	})

	return created, err
}

// passDomainError возвращает бизнес-ошибку как есть, прочие оборачивает в ErrInternal
func (uc *UseCase) passDomainError(step string, err error) error {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		uc.logger.Warn("CreateAppointment: %s rejected: %v", step, err)
		return domainErr
	}
	uc.logger.Error("CreateAppointment: %s failed: %v", step, err)
	if errors.Is(err, ErrInternal) {
		return err
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, step, err)
}

func buildClients(totals *pricing.Totals) []domain.AppointmentClient {
	clients := make([]domain.AppointmentClient, 0, len(totals.Clients))
	for _, ct := range totals.Clients {
		client := domain.AppointmentClient{
			ClientNumber: ct.ClientNumber,
			ServiceID:    ct.Service.ID,
			Service:      ct.Service,
			AddOnIDs:     make([]string, 0, len(ct.AddOns)),
			AddOns:       make([]domain.AddOn, 0, len(ct.AddOns)),
		}
		for _, a := range ct.AddOns {
			client.AddOnIDs = append(client.AddOnIDs, a.ID)
			client.AddOns = append(client.AddOns, *a)
		}
		clients = append(clients, client)
	}
	return clients
}
