package check_availability

import "github.com/m04kA/LashBookingService/internal/domain"

// Request модель запроса проверки доступности (строки в формате API)
type Request struct {
	Date     string // YYYY-MM-DD
	Time     string // HH:MM
	Duration *int   // минуты, по умолчанию domain.DefaultCheckDurationMinutes
}

// Response результат проверки. Reason и Code заполнены только при Available == false.
type Response struct {
	Available bool
	Reason    string
	Code      domain.ErrorKind
}
