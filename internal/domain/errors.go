package domain

import "errors"

// ErrorKind machine-readable error code returned to API clients
type ErrorKind string

const (
	KindInvalidDateFormat       ErrorKind = "invalid_date_format"
	KindInvalidTimeFormat       ErrorKind = "invalid_time_format"
	KindDateBlocked             ErrorKind = "date_blocked"
	KindBusinessClosed          ErrorKind = "business_closed"
	KindOutsideBusinessHours    ErrorKind = "outside_business_hours"
	KindSlotNotAvailable        ErrorKind = "slot_not_available"
	KindServiceNotFound         ErrorKind = "service_not_found"
	KindAddOnNotFound           ErrorKind = "addon_not_found"
	KindMissingParameter        ErrorKind = "missing_parameter"
	KindAppointmentNotFound     ErrorKind = "appointment_not_found"
	KindInvalidDuration         ErrorKind = "invalid_duration"
	KindInvalidInput            ErrorKind = "invalid_input"
	KindInvalidStatusTransition ErrorKind = "invalid_status_transition"
)

// Error is a business rule violation. Two errors match under errors.Is when their kinds match,
// so a detailed error still matches the package sentinel of the same kind.
type Error struct {
	Kind   ErrorKind
	Detail string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return string(e.Kind)
}

// Is matches by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// NewError creates an error of the given kind with a custom detail message.
func NewError(kind ErrorKind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

// MissingParameter reports an absent required parameter.
func MissingParameter(name string) *Error {
	return &Error{Kind: KindMissingParameter, Detail: name + " is required"}
}

// InvalidInput reports a malformed request field.
func InvalidInput(detail string) *Error {
	return &Error{Kind: KindInvalidInput, Detail: detail}
}

// KindOf extracts the kind of the first *Error in the chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

var (
	ErrInvalidDateFormat       = &Error{Kind: KindInvalidDateFormat, Detail: "Invalid date format. Use YYYY-MM-DD"}
	ErrInvalidTimeFormat       = &Error{Kind: KindInvalidTimeFormat, Detail: "Invalid time format. Use HH:MM"}
	ErrDateBlocked             = &Error{Kind: KindDateBlocked, Detail: "Date is blocked"}
	ErrBusinessClosed          = &Error{Kind: KindBusinessClosed, Detail: "Closed on this day"}
	ErrOutsideBusinessHours    = &Error{Kind: KindOutsideBusinessHours, Detail: "Outside business hours"}
	ErrSlotNotAvailable        = &Error{Kind: KindSlotNotAvailable, Detail: "Time slot already booked"}
	ErrServiceNotFound         = &Error{Kind: KindServiceNotFound, Detail: "Service not found"}
	ErrAddOnNotFound           = &Error{Kind: KindAddOnNotFound, Detail: "Add-on not found"}
	ErrMissingParameter        = &Error{Kind: KindMissingParameter, Detail: "Required parameter is missing"}
	ErrAppointmentNotFound     = &Error{Kind: KindAppointmentNotFound, Detail: "Appointment not found"}
	ErrInvalidDuration         = &Error{Kind: KindInvalidDuration, Detail: "Duration must be positive"}
	ErrInvalidInput            = &Error{Kind: KindInvalidInput, Detail: "Invalid input"}
	ErrInvalidStatusTransition = &Error{Kind: KindInvalidStatusTransition, Detail: "Status transition is not allowed"}
)
