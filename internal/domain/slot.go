package domain

import "github.com/m04kA/LashBookingService/pkg/types"

// Slot is an enumerated appointment start time
type Slot struct {
	Time      types.TimeString
	Available bool
}
