package availability

import "errors"

var (
	// ErrInternal возвращается при ошибках чтения расписания или записей
	ErrInternal = errors.New("availability: internal error")
)
