package list_blocked_dates

import "github.com/m04kA/LashBookingService/internal/domain"

// BlockedDateResponse заблокированная дата
type BlockedDateResponse struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

func fromDomain(dates []*domain.BlockedDate) []BlockedDateResponse {
	result := make([]BlockedDateResponse, 0, len(dates))
	for _, d := range dates {
		result = append(result, BlockedDateResponse{
			Date:   domain.FormatDate(d.Date),
			Reason: d.Reason,
		})
	}
	return result
}
