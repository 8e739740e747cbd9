package domain

import "github.com/shopspring/decimal"

// Scheduling constants
const (
	// SlotDurationMinutes step between enumerated slot starts
	SlotDurationMinutes = 45

	// DefaultCheckDurationMinutes duration assumed by availability checks that omit it
	DefaultCheckDurationMinutes = 90
)

// TransportSurcharge fixed fee added to the price when the studio travels to the client
var TransportSurcharge = decimal.RequireFromString("2.00")

// Validation limits
const (
	MaxNameLength     = 100
	MaxPhoneLength    = 20
	MaxLocationLength = 255
	MaxNotesLength    = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
