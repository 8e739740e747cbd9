package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/LashBookingService/internal/domain"
	"github.com/m04kA/LashBookingService/pkg/types"
)

// validateRequest проверяет обязательные поля и разбирает дату и время
func validateRequest(req *Request) (time.Time, types.TimeString, error) {
	required := []struct {
		name  string
		value string
	}{
		{"firstName", req.FirstName},
		{"lastName", req.LastName},
		{"email", req.Email},
		{"phone", req.Phone},
		{"location", req.Location},
		{"appointmentDate", req.Date},
		{"appointmentTime", req.Time},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return time.Time{}, "", domain.MissingParameter(f.name)
		}
	}

	if !strings.Contains(req.Email, "@") {
		return time.Time{}, "", domain.InvalidInput("email is invalid")
	}
	if len(req.FirstName) > domain.MaxNameLength || len(req.LastName) > domain.MaxNameLength {
		return time.Time{}, "", domain.InvalidInput(fmt.Sprintf("name must be at most %d characters", domain.MaxNameLength))
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return time.Time{}, "", domain.InvalidInput(fmt.Sprintf("phone must be at most %d characters", domain.MaxPhoneLength))
	}
	if len(req.Location) > domain.MaxLocationLength {
		return time.Time{}, "", domain.InvalidInput(fmt.Sprintf("location must be at most %d characters", domain.MaxLocationLength))
	}
	if len(req.Notes) > domain.MaxNotesLength {
		return time.Time{}, "", domain.InvalidInput(fmt.Sprintf("notes must be at most %d characters", domain.MaxNotesLength))
	}

	if len(req.Clients) == 0 {
		return time.Time{}, "", domain.MissingParameter("clients")
	}
	for i, c := range req.Clients {
		if strings.TrimSpace(c.ServiceID) == "" {
			return time.Time{}, "", domain.MissingParameter(fmt.Sprintf("clients[%d].serviceId", i))
		}
		seen := make(map[string]struct{}, len(c.AddOnIDs))
		for _, id := range c.AddOnIDs {
			if _, dup := seen[id]; dup {
				return time.Time{}, "", domain.InvalidInput(fmt.Sprintf("clients[%d]: duplicate add-on %s", i, id))
			}
			seen[id] = struct{}{}
		}
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return time.Time{}, "", err
	}
	start, err := domain.ParseTime(req.Time)
	if err != nil {
		return time.Time{}, "", err
	}

	return date, start, nil
}
