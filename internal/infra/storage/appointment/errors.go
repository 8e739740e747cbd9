package appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotTaken возвращается при нарушении уникального индекса активных записей на (дата, время)
	ErrSlotTaken = errors.New("appointment.repository: slot already taken")

	// ErrStatusChanged возвращается, когда статус записи изменился между чтением и обновлением
	ErrStatusChanged = errors.New("appointment.repository: status changed concurrently")

	// ErrDuplicateConfirmationCode возвращается при коллизии кода подтверждения
	ErrDuplicateConfirmationCode = errors.New("appointment.repository: duplicate confirmation code")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
