package domain

import (
	"time"

	"github.com/m04kA/LashBookingService/pkg/types"
)

// Weekday numbered from Monday (0) to Sunday (6)
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekdayOf converts a calendar date to a Monday-based weekday
func WeekdayOf(date time.Time) Weekday {
	return Weekday((int(date.Weekday()) + 6) % 7)
}

// Valid returns true for 0..6
func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) String() string {
	if !w.Valid() {
		return "Unknown"
	}
	return weekdayNames[w]
}

// BusinessHours is the opening template for one weekday
type BusinessHours struct {
	ID        int64
	Weekday   Weekday
	IsOpen    bool
	OpenTime  types.TimeString
	CloseTime types.TimeString
}

// Contains reports whether t falls in [OpenTime, CloseTime)
func (h *BusinessHours) Contains(t types.TimeString) bool {
	if !h.IsOpen {
		return false
	}
	return !t.IsBefore(h.OpenTime) && t.IsBefore(h.CloseTime)
}

// MissingHoursPolicy decides how validation treats a weekday without a BusinessHours row
type MissingHoursPolicy string

const (
	// MissingHoursUnconstrained skips the hours check
	MissingHoursUnconstrained MissingHoursPolicy = "unconstrained"
	// MissingHoursClosed treats the day as closed
	MissingHoursClosed MissingHoursPolicy = "closed"
)

// BlockedDate is a calendar date when no bookings are accepted
type BlockedDate struct {
	ID     int64
	Date   time.Time
	Reason string
}
