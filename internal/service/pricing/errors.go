package pricing

import "errors"

var (
	// ErrInternal возвращается при ошибках чтения каталога
	ErrInternal = errors.New("pricing: internal error")
)
