package domain

import (
	"strings"
	"time"

	"github.com/m04kA/LashBookingService/pkg/types"
)

// ParseDate parses YYYY-MM-DD into a UTC midnight
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDateFormat
	}
	d, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return d, nil
}

// ParseTime parses HH:MM (24-hour)
func ParseTime(s string) (types.TimeString, error) {
	t, err := types.NewTimeStringFromString(strings.TrimSpace(s))
	if err != nil {
		return "", ErrInvalidTimeFormat
	}
	return t, nil
}

// FormatDate renders a date as YYYY-MM-DD
func FormatDate(d time.Time) string {
	return d.Format(DateFormat)
}
