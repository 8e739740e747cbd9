package get_available_slots

import (
	"time"

	"github.com/m04kA/LashBookingService/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	Date string // YYYY-MM-DD
}

// Response модель ответа со списком слотов
type Response struct {
	Date  time.Time
	Slots []domain.Slot
}
