package schedule

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
)

// Repository репозиторий расписания: часы работы и заблокированные даты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBusinessHours получает часы работы для дня недели (0 = понедельник)
func (r *Repository) GetBusinessHours(ctx context.Context, weekday domain.Weekday) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "weekday", "is_open", "open_time", "close_time").
		From("business_hours").
		Where(squirrel.Eq{"weekday": int(weekday)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - build select query: %v", ErrBuildQuery, err)
	}

	var hours domain.BusinessHours
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hours.ID,
		&hours.Weekday,
		&hours.IsOpen,
		&hours.OpenTime,
		&hours.CloseTime,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBusinessHours - scan hours: %w", ErrScanRow, err)
	}

	return &hours, nil
}

// ListBusinessHours возвращает недельный шаблон, упорядоченный по дню недели
func (r *Repository) ListBusinessHours(ctx context.Context) ([]*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "weekday", "is_open", "open_time", "close_time").
		From("business_hours").
		OrderBy("weekday").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBusinessHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBusinessHours - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BusinessHours, 0, 7)
	for rows.Next() {
		var hours domain.BusinessHours
		if err := rows.Scan(&hours.ID, &hours.Weekday, &hours.IsOpen, &hours.OpenTime, &hours.CloseTime); err != nil {
			return nil, fmt.Errorf("%w: ListBusinessHours - scan row: %w", ErrScanRow, err)
		}
		result = append(result, &hours)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBusinessHours - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}

// IsDateBlocked проверяет, заблокирована ли дата
func (r *Repository) IsDateBlocked(ctx context.Context, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From("blocked_dates").
		Where(squirrel.Eq{"date": domain.FormatDate(date)}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsDateBlocked - build select query: %v", ErrBuildQuery, err)
	}

	var blocked bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&blocked); err != nil {
		return false, fmt.Errorf("%w: IsDateBlocked - scan: %w", ErrScanRow, err)
	}

	return blocked, nil
}

// ListBlockedDates возвращает заблокированные даты начиная с from (nil - все)
func (r *Repository) ListBlockedDates(ctx context.Context, from *time.Time) ([]*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("id", "date", "reason").
		From("blocked_dates").
		OrderBy("date")
	if from != nil {
		builder = builder.Where(squirrel.GtOrEq{"date": domain.FormatDate(*from)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BlockedDate, 0)
	for rows.Next() {
		var d domain.BlockedDate
		if err := rows.Scan(&d.ID, &d.Date, &d.Reason); err != nil {
			return nil, fmt.Errorf("%w: ListBlockedDates - scan row: %w", ErrScanRow, err)
		}
		result = append(result, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlockedDates - rows error: %w", ErrScanRow, err)
	}

	return result, nil
}
