package list_business_hours

import "github.com/m04kA/LashBookingService/internal/domain"

// BusinessHoursResponse часы работы для одного дня недели.
// Для закрытого дня время не возвращается.
type BusinessHoursResponse struct {
	Weekday        int     `json:"weekday"`
	WeekdayDisplay string  `json:"weekdayDisplay"`
	IsOpen         bool    `json:"isOpen"`
	OpenTime       *string `json:"openTime"`
	CloseTime      *string `json:"closeTime"`
}

func fromDomain(hours []*domain.BusinessHours) []BusinessHoursResponse {
	result := make([]BusinessHoursResponse, 0, len(hours))
	for _, h := range hours {
		item := BusinessHoursResponse{
			Weekday:        int(h.Weekday),
			WeekdayDisplay: h.Weekday.String(),
			IsOpen:         h.IsOpen,
		}
		if h.IsOpen {
			open, closeTime := h.OpenTime.String(), h.CloseTime.String()
			item.OpenTime = &open
			item.CloseTime = &closeTime
		}
		result = append(result, item)
	}
	return result
}
