package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/LashBookingService/pkg/types"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// ActiveStatuses occupy time on the calendar
var ActiveStatuses = []AppointmentStatus{StatusPending, StatusConfirmed}

var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed: {StatusCompleted, StatusCancelled, StatusNoShow},
}

// ParseAppointmentStatus validates a wire value
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch st := AppointmentStatus(s); st {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return st, true
	default:
		return "", false
	}
}

// IsActive returns true for pending and confirmed
func (s AppointmentStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsTerminal returns true when no further transitions are allowed
func (s AppointmentStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

// CanTransitionTo checks the status transition table
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Customer books appointments; identified by e-mail
type Customer struct {
	ID          int64
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	IsReturning bool
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FullName returns "First Last"
func (c *Customer) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// Appointment is a booked visit; it is never deleted, only moved between statuses
type Appointment struct {
	ID               int64
	CustomerID       int64
	Customer         *Customer
	Date             time.Time
	Time             types.TimeString
	Location         string
	NeedsTransport   bool
	Status           AppointmentStatus
	TotalDuration    int
	TotalPrice       decimal.Decimal
	Notes            string
	ConfirmationCode string
	Clients          []AppointmentClient

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive returns true if the appointment occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status.IsActive()
}

// StartMinutes returns the start as minutes after midnight
func (a *Appointment) StartMinutes() int {
	return a.Time.Minutes()
}

// EndMinutes returns the exclusive end as minutes after midnight (may exceed 24h)
func (a *Appointment) EndMinutes() int {
	return a.Time.Minutes() + a.TotalDuration
}

// Overlaps reports whether [start, start+duration) intersects this appointment
func (a *Appointment) Overlaps(start, duration int) bool {
	return a.StartMinutes() < start+duration && a.EndMinutes() > start
}

// AppointmentClient is one person served within an appointment
type AppointmentClient struct {
	ID            int64
	AppointmentID int64
	ClientNumber  int // 1-based
	ServiceID     string
	Service       *Service
	AddOnIDs      []string
	AddOns        []AddOn
}

// AppointmentFilter filters appointment listings
type AppointmentFilter struct {
	Date     *time.Time
	DateFrom *time.Time
	DateTo   *time.Time
	Status   *AppointmentStatus
}
