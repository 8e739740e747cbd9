package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/LashBookingService/internal/domain"
	"github.com/m04kA/LashBookingService/pkg/dbmetrics"
	"github.com/m04kA/LashBookingService/pkg/psqlbuilder"
	"github.com/m04kA/LashBookingService/pkg/types"
)

var appointmentColumns = []string{
	"a.id",
	"a.customer_id",
	"a.appointment_date",
	"a.appointment_time",
	"a.location",
	"a.needs_transport",
	"a.status",
	"a.total_duration",
	"a.total_price",
	"a.notes",
	"a.confirmation_code",
	"a.cancelled_at",
	"a.created_at",
	"a.updated_at",
	"c.first_name",
	"c.last_name",
	"c.email",
	"c.phone",
	"c.is_returning",
}

// Repository репозиторий записей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись вместе с клиентами и их дополнительными опциями.
// Должен вызываться внутри транзакции: при ошибке на любом шаге всё откатывается.
//
// Нарушение уникального индекса активных записей возвращается как ErrSlotTaken,
// коллизия кода подтверждения как ErrDuplicateConfirmationCode.
// Прочие ошибки PostgreSQL сохраняются в цепочке (конфликты сериализации повторяет менеджер транзакций).
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"customer_id",
			"appointment_date",
			"appointment_time",
			"location",
			"needs_transport",
			"status",
			"total_duration",
			"total_price",
			"notes",
			"confirmation_code",
		).
		Values(
			appt.CustomerID,
			domain.FormatDate(appt.Date),
			appt.Time,
			appt.Location,
			appt.NeedsTransport,
			appt.Status,
			appt.TotalDuration,
			appt.TotalPrice,
			appt.Notes,
			appt.ConfirmationCode,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&appt.ID, &appt.CreatedAt, &appt.UpdatedAt)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	for i := range appt.Clients {
		client := &appt.Clients[i]
		client.AppointmentID = appt.ID
		if err := r.createClient(ctx, executor, client); err != nil {
			return nil, err
		}
	}

	return appt, nil
}

func (r *Repository) createClient(ctx context.Context, executor DBExecutor, client *domain.AppointmentClient) error {
	query, args, err := psqlbuilder.Insert("appointment_clients").
		Columns("appointment_id", "client_number", "service_id").
		Values(client.AppointmentID, client.ClientNumber, client.ServiceID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build client insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&client.ID); err != nil {
		return fmt.Errorf("%w: Create - insert client %d: %w", ErrExecQuery, client.ClientNumber, err)
	}

	if len(client.AddOnIDs) == 0 {
		return nil
	}

	insert := psqlbuilder.Insert("appointment_client_add_ons").
		Columns("appointment_client_id", "add_on_id").
		Suffix("ON CONFLICT DO NOTHING")
	for _, addOnID := range client.AddOnIDs {
		insert = insert.Values(client.ID, addOnID)
	}

	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build add-ons insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - insert add-ons for client %d: %w", ErrExecQuery, client.ClientNumber, err)
	}

	return nil
}

// GetByID получает запись по ID вместе с клиентом и составом услуг
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"a.id": id})
}

// GetByConfirmationCode получает запись по коду подтверждения
func (r *Repository) GetByConfirmationCode(ctx context.Context, code string) (*domain.Appointment, error) {
	return r.getOne(ctx, "GetByConfirmationCode", squirrel.Eq{"a.confirmation_code": code})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectAppointments().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan appointment: %w", ErrScanRow, op, err)
	}

	if err := r.loadClients(ctx, []*domain.Appointment{appt}); err != nil {
		return nil, err
	}

	return appt, nil
}

// GetActiveByDate возвращает активные записи (pending, confirmed) на дату, упорядоченные по времени.
// Загружаются только поля, нужные для проверки пересечений.
//
// Внутри транзакции строки блокируются (FOR UPDATE), чтобы проверка доступности и вставка
// выполнялись над одним и тем же состоянием.
func (r *Repository) GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("id", "appointment_time", "total_duration", "status").
		From("appointments").
		Where(squirrel.Eq{
			"appointment_date": domain.FormatDate(date),
			"status":           domain.ActiveStatuses,
		}).
		OrderBy("appointment_time")

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt := &domain.Appointment{Date: date}
		if err := rows.Scan(&appt.ID, &appt.Time, &appt.TotalDuration, &appt.Status); err != nil {
			return nil, fmt.Errorf("%w: GetActiveByDate - scan row: %w", ErrScanRow, err)
		}
		result = append(result, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

// List возвращает записи по фильтру, упорядоченные по дате и времени
func (r *Repository) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := selectAppointments().OrderBy("a.appointment_date", "a.appointment_time")

	if filter.Date != nil {
		builder = builder.Where(squirrel.Eq{"a.appointment_date": domain.FormatDate(*filter.Date)})
	}
	if filter.DateFrom != nil {
		builder = builder.Where(squirrel.GtOrEq{"a.appointment_date": domain.FormatDate(*filter.DateFrom)})
	}
	if filter.DateTo != nil {
		builder = builder.Where(squirrel.LtOrEq{"a.appointment_date": domain.FormatDate(*filter.DateTo)})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"a.status": *filter.Status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		result = append(result, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	if err := r.loadClients(ctx, result); err != nil {
		return nil, err
	}

	return result, nil
}

// UpdateStatus переводит запись из статуса from в статус to. При переводе в cancelled проставляется cancelled_at.
// Обновление условное: если статус уже изменен параллельно, возвращается ErrStatusChanged.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("appointments").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from})
	if to == domain.StatusCancelled {
		builder = builder.Set("cancelled_at", squirrel.Expr("NOW()"))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusChanged
	}

	return nil
}

// UpdateSchedule переносит запись на новые дату и время
func (r *Repository) UpdateSchedule(ctx context.Context, id int64, date time.Time, startTime types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("appointment_date", domain.FormatDate(date)).
		Set("appointment_time", startTime).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("%w: UpdateSchedule - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSchedule - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// loadClients подгружает клиентов и их дополнительные опции двумя запросами на весь список
func (r *Repository) loadClients(ctx context.Context, appts []*domain.Appointment) error {
	if len(appts) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	byID := make(map[int64]*domain.Appointment, len(appts))
	ids := make([]int64, 0, len(appts))
	for _, a := range appts {
		byID[a.ID] = a
		ids = append(ids, a.ID)
	}

	query, args, err := psqlbuilder.Select(
		"ac.id",
		"ac.appointment_id",
		"ac.client_number",
		"s.id",
		"s.name",
		"s.duration_minutes",
		"s.price",
		"s.category",
	).
		From("appointment_clients ac").
		Join("services s ON s.id = ac.service_id").
		Where(squirrel.Eq{"ac.appointment_id": ids}).
		OrderBy("ac.appointment_id", "ac.client_number").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadClients - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadClients - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	// Храним индекс, а не указатель: append может переаллоцировать appt.Clients
	type clientRef struct {
		appt  *domain.Appointment
		index int
	}
	refs := make(map[int64]clientRef)
	clientIDs := make([]int64, 0)

	for rows.Next() {
		var (
			client  domain.AppointmentClient
			service domain.Service
		)
		err := rows.Scan(
			&client.ID,
			&client.AppointmentID,
			&client.ClientNumber,
			&service.ID,
			&service.Name,
			&service.DurationMinutes,
			&service.Price,
			&service.Category,
		)
		if err != nil {
			return fmt.Errorf("%w: loadClients - scan row: %w", ErrScanRow, err)
		}

		service.IsActive = true
		client.ServiceID = service.ID
		client.Service = &service

		appt := byID[client.AppointmentID]
		appt.Clients = append(appt.Clients, client)
		refs[client.ID] = clientRef{appt: appt, index: len(appt.Clients) - 1}
		clientIDs = append(clientIDs, client.ID)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadClients - rows error: %w", ErrScanRow, err)
	}

	if len(clientIDs) == 0 {
		return nil
	}

	query, args, err = psqlbuilder.Select(
		"aca.appointment_client_id",
		"ao.id",
		"ao.name",
		"ao.duration_minutes",
		"ao.price",
	).
		From("appointment_client_add_ons aca").
		Join("add_ons ao ON ao.id = aca.add_on_id").
		Where(squirrel.Eq{"aca.appointment_client_id": clientIDs}).
		OrderBy("aca.appointment_client_id", "ao.id").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadClients - build add-ons query: %v", ErrBuildQuery, err)
	}

	addOnRows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadClients - execute add-ons query: %w", ErrExecQuery, err)
	}
	defer addOnRows.Close()

	for addOnRows.Next() {
		var (
			clientID int64
			addOn    domain.AddOn
		)
		if err := addOnRows.Scan(&clientID, &addOn.ID, &addOn.Name, &addOn.DurationMinutes, &addOn.Price); err != nil {
			return fmt.Errorf("%w: loadClients - scan add-on row: %w", ErrScanRow, err)
		}

		ref, ok := refs[clientID]
		if !ok {
			continue
		}
		addOn.IsActive = true
		client := &ref.appt.Clients[ref.index]
		client.AddOnIDs = append(client.AddOnIDs, addOn.ID)
		client.AddOns = append(client.AddOns, addOn)
	}

	if err := addOnRows.Err(); err != nil {
		return fmt.Errorf("%w: loadClients - add-on rows error: %w", ErrScanRow, err)
	}

	return nil
}

func selectAppointments() squirrel.SelectBuilder {
	return psqlbuilder.Select(appointmentColumns...).
		From("appointments a").
		Join("customers c ON c.id = a.customer_id")
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row scanner) (*domain.Appointment, error) {
	var (
		appt        domain.Appointment
		customer    domain.Customer
		cancelledAt sql.NullTime
	)

	err := row.Scan(
		&appt.ID,
		&appt.CustomerID,
		&appt.Date,
		&appt.Time,
		&appt.Location,
		&appt.NeedsTransport,
		&appt.Status,
		&appt.TotalDuration,
		&appt.TotalPrice,
		&appt.Notes,
		&appt.ConfirmationCode,
		&cancelledAt,
		&appt.CreatedAt,
		&appt.UpdatedAt,
		&customer.FirstName,
		&customer.LastName,
		&customer.Email,
		&customer.Phone,
		&customer.IsReturning,
	)
	if err != nil {
		return nil, err
	}

	if cancelledAt.Valid {
		appt.CancelledAt = &cancelledAt.Time
	}
	customer.ID = appt.CustomerID
	appt.Customer = &customer
	appt.Clients = make([]domain.AppointmentClient, 0)

	return &appt, nil
}
