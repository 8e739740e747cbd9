package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/LashBookingService/internal/domain"
	"github.com/m04kA/LashBookingService/pkg/dbmetrics"
	"github.com/m04kA/LashBookingService/pkg/psqlbuilder"
)

var serviceColumns = []string{
	"id",
	"name",
	"description",
	"duration_minutes",
	"price",
	"category",
	"is_active",
	"created_at",
	"updated_at",
}

var addOnColumns = []string{
	"id",
	"name",
	"description",
	"duration_minutes",
	"price",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога услуг и дополнительных опций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListServices возвращает услуги, отсортированные по категории и цене
func (r *Repository) ListServices(ctx context.Context, activeOnly bool) ([]*domain.Service, error) {
	builder := psqlbuilder.Select(serviceColumns...).
		From("services").
		OrderBy("category", "price", "id")
	if activeOnly {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryServices(ctx, "ListServices", query, args)
}

// GetServiceByID получает услугу по ID (в том числе неактивную)
func (r *Repository) GetServiceByID(ctx context.Context, id string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	service, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %w", ErrScanRow, err)
	}

	return service, nil
}

// GetServicesByIDs получает услуги по списку ID одним запросом.
// Отсутствующие ID просто не попадают в результат.
func (r *Repository) GetServicesByIDs(ctx context.Context, ids []string) ([]*domain.Service, error) {
	if len(ids) == 0 {
		return []*domain.Service{}, nil
	}

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryServices(ctx, "GetServicesByIDs", query, args)
}

// ListAddOns возвращает дополнительные опции
func (r *Repository) ListAddOns(ctx context.Context, activeOnly bool) ([]*domain.AddOn, error) {
	builder := psqlbuilder.Select(addOnColumns...).
		From("add_ons").
		OrderBy("price", "id")
	if activeOnly {
		builder = builder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAddOns - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryAddOns(ctx, "ListAddOns", query, args)
}

// GetAddOnByID получает дополнительную опцию по ID
func (r *Repository) GetAddOnByID(ctx context.Context, id string) (*domain.AddOn, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(addOnColumns...).
		From("add_ons").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAddOnByID - build select query: %v", ErrBuildQuery, err)
	}

	addOn, err := scanAddOn(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAddOnNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetAddOnByID - scan add-on: %w", ErrScanRow, err)
	}

	return addOn, nil
}

// GetAddOnsByIDs получает дополнительные опции по списку ID одним запросом
func (r *Repository) GetAddOnsByIDs(ctx context.Context, ids []string) ([]*domain.AddOn, error) {
	if len(ids) == 0 {
		return []*domain.AddOn{}, nil
	}

	query, args, err := psqlbuilder.Select(addOnColumns...).
		From("add_ons").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAddOnsByIDs - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryAddOns(ctx, "GetAddOnsByIDs", query, args)
}

func (r *Repository) queryServices(ctx context.Context, op, query string, args []interface{}) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return services, nil
}

func (r *Repository) queryAddOns(ctx context.Context, op, query string, args []interface{}) ([]*domain.AddOn, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	addOns := make([]*domain.AddOn, 0)
	for rows.Next() {
		addOn, err := scanAddOn(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		addOns = append(addOns, addOn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return addOns, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row scanner) (*domain.Service, error) {
	var s domain.Service
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Description,
		&s.DurationMinutes,
		&s.Price,
		&s.Category,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanAddOn(row scanner) (*domain.AddOn, error) {
	var a domain.AddOn
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Description,
		&a.DurationMinutes,
		&a.Price,
		&a.IsActive,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
