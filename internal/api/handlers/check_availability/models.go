package check_availability

import checkAvailability "github.com/m04kA/LashBookingService/internal/usecase/check_availability"

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	AppointmentDate string `json:"appointmentDate"` // "2025-03-22"
	AppointmentTime string `json:"appointmentTime"` // "10:00"
	Duration        *int   `json:"duration,omitempty"`
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
	Code      string `json:"code,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest() *checkAvailability.Request {
	return &checkAvailability.Request{
		Date:     r.AppointmentDate,
		Time:     r.AppointmentTime,
		Duration: r.Duration,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *CheckAvailabilityResponse {
	return &CheckAvailabilityResponse{
		Available: resp.Available,
		Reason:    resp.Reason,
		Code:      string(resp.Code),
	}
}
