package customer

import (
	"context"
	"fmt"

	"github.com/m04kA/LashBookingService/internal/domain"
	"github.com/m04kA/LashBookingService/pkg/dbmetrics"
	"github.com/m04kA/LashBookingService/pkg/psqlbuilder"
)

// Repository репозиторий клиентов студии
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpsertByEmail создает клиента или обновляет контактные данные существующего с тем же email.
// Ошибка PostgreSQL сохраняется в цепочке, чтобы менеджер транзакций мог распознать конфликт сериализации.
func (r *Repository) UpsertByEmail(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("first_name", "last_name", "email", "phone", "is_returning", "notes").
		Values(
			customer.FirstName,
			customer.LastName,
			customer.Email,
			customer.Phone,
			customer.IsReturning,
			customer.Notes,
		).
		Suffix(`ON CONFLICT (email) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			phone = EXCLUDED.phone,
			is_returning = EXCLUDED.is_returning,
			updated_at = NOW()
		RETURNING id, notes, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertByEmail - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&customer.Notes,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertByEmail - execute upsert: %w", ErrExecQuery, err)
	}

	return customer, nil
}
