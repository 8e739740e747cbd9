package appointment

import (
	"errors"

	"github.com/lib/pq"
)

const (
	codeUniqueViolation = "23505"

	constraintActiveSlot       = "appointments_active_slot_key"
	constraintConfirmationCode = "appointments_confirmation_code_key"
)

// mapUniqueViolation переводит нарушение уникальных ограничений appointments в ошибки репозитория.
// Для остальных ошибок возвращает nil.
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != codeUniqueViolation {
		return nil
	}

	switch pqErr.Constraint {
	case constraintActiveSlot:
		return ErrSlotTaken
	case constraintConfirmationCode:
		return ErrDuplicateConfirmationCode
	default:
		return nil
	}
}
