package list_appointments

import (
	"fmt"
	"net/url"
	"time"

	"github.com/m04kA/LashBookingService/internal/domain"
)

// ToFilter собирает фильтр из query параметров date, from, to, status
func ToFilter(query url.Values) (domain.AppointmentFilter, error) {
	var filter domain.AppointmentFilter

	dates := []struct {
		name string
		dst  **time.Time
	}{
		{"date", &filter.Date},
		{"from", &filter.DateFrom},
		{"to", &filter.DateTo},
	}
	for _, d := range dates {
		raw := query.Get(d.name)
		if raw == "" {
			continue
		}
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			return domain.AppointmentFilter{}, err
		}
		*d.dst = &parsed
	}

	if raw := query.Get("status"); raw != "" {
		status, ok := domain.ParseAppointmentStatus(raw)
		if !ok {
			return domain.AppointmentFilter{}, domain.InvalidInput(fmt.Sprintf("unknown status %q", raw))
		}
		filter.Status = &status
	}

	return filter, nil
}
