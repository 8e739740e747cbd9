package notification

import "errors"

var (
	// ErrSendFailed возвращается при ошибке отправки письма
	ErrSendFailed = errors.New("notification: send failed")

	// ErrTimeout возвращается, когда отправка не уложилась в таймаут
	ErrTimeout = errors.New("notification: send timeout")
)
