package create_appointment

import (
	"github.com/m04kA/LashBookingService/internal/api/handlers"
	createAppointment "github.com/m04kA/LashBookingService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	FirstName       string          `json:"firstName" validate:"required,max=100"`
	LastName        string          `json:"lastName" validate:"required,max=100"`
	Email           string          `json:"email" validate:"required,email"`
	Phone           string          `json:"phone" validate:"required,max=20"`
	IsReturning     bool            `json:"isReturning"`
	Location        string          `json:"location" validate:"required,max=255"`
	NeedsTransport  bool            `json:"needsTransport"`
	AppointmentDate string          `json:"appointmentDate" validate:"required"` // "2025-03-22"
	AppointmentTime string          `json:"appointmentTime" validate:"required"` // "10:00"
	Notes           string          `json:"notes" validate:"max=1000"`
	Clients         []ClientRequest `json:"clients" validate:"required,min=1,dive"`
}

// ClientRequest выбор одного клиента
type ClientRequest struct {
	ServiceID string   `json:"serviceId" validate:"required"`
	AddOnIDs  []string `json:"addOnIds" validate:"unique,dive,required"`
}

// CreateAppointmentResponse созданная запись с разбивкой стоимости
type CreateAppointmentResponse struct {
	*handlers.AppointmentResponse
	Pricing PricingResponse `json:"pricing"`
}

// PricingResponse разбивка стоимости
type PricingResponse struct {
	Subtotal     string                  `json:"subtotal"`
	TransportFee string                  `json:"transportFee"`
	Total        string                  `json:"total"`
	Clients      []ClientPricingResponse `json:"clients"`
}

// ClientPricingResponse длительность и стоимость одного клиента
type ClientPricingResponse struct {
	ClientNumber int    `json:"clientNumber"`
	Duration     int    `json:"duration"`
	Price        string `json:"price"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() *createAppointment.Request {
	clients := make([]createAppointment.Client, 0, len(r.Clients))
	for _, c := range r.Clients {
		clients = append(clients, createAppointment.Client{
			ServiceID: c.ServiceID,
			AddOnIDs:  c.AddOnIDs,
		})
	}

	return &createAppointment.Request{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		IsReturning:    r.IsReturning,
		Location:       r.Location,
		NeedsTransport: r.NeedsTransport,
		Date:           r.AppointmentDate,
		Time:           r.AppointmentTime,
		Notes:          r.Notes,
		Clients:        clients,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	pricing := PricingResponse{
		Subtotal:     resp.Totals.Subtotal.StringFixed(2),
		TransportFee: resp.Totals.TransportFee.StringFixed(2),
		Total:        resp.Totals.Price.StringFixed(2),
		Clients:      make([]ClientPricingResponse, 0, len(resp.Totals.Clients)),
	}
	for _, c := range resp.Totals.Clients {
		pricing.Clients = append(pricing.Clients, ClientPricingResponse{
			ClientNumber: c.ClientNumber,
			Duration:     c.Duration,
			Price:        c.Price.StringFixed(2),
		})
	}

	return &CreateAppointmentResponse{
		AppointmentResponse: handlers.FromAppointment(resp.Appointment),
		Pricing:             pricing,
	}
}
