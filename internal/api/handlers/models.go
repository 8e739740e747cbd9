package handlers

import (
	"time"

	"github.com/m04kA/LashBookingService/internal/domain"
	"github.com/m04kA/LashBookingService/pkg/ptr"
)

// ServiceResponse услуга в ответах API
type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	IsActive    bool   `json:"isActive"`
}

// AddOnResponse дополнительная опция в ответах API
type AddOnResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Price       string `json:"price"`
	IsActive    bool   `json:"isActive"`
}

// CustomerResponse клиент студии
type CustomerResponse struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	IsReturning bool   `json:"isReturning"`
}

// AppointmentClientResponse один клиент внутри записи
type AppointmentClientResponse struct {
	ClientNumber int              `json:"clientNumber"`
	Service      *ServiceResponse `json:"service,omitempty"`
	ServiceID    string           `json:"serviceId"`
	AddOns       []AddOnResponse  `json:"addOns"`
}

// AppointmentResponse детальное представление записи
type AppointmentResponse struct {
	ID               int64                       `json:"id"`
	Customer         *CustomerResponse           `json:"customer,omitempty"`
	AppointmentDate  string                      `json:"appointmentDate"`
	AppointmentTime  string                      `json:"appointmentTime"`
	Location         string                      `json:"location"`
	NeedsTransport   bool                        `json:"needsTransport"`
	Status           string                      `json:"status"`
	ConfirmationCode string                      `json:"confirmationCode"`
	TotalDuration    int                         `json:"totalDuration"`
	TotalPrice       string                      `json:"totalPrice"`
	Notes            string                      `json:"notes"`
	Clients          []AppointmentClientResponse `json:"clients"`
	CancelledAt      *string                     `json:"cancelledAt,omitempty"`
	CreatedAt        string                      `json:"createdAt"`
	UpdatedAt        string                      `json:"updatedAt"`
}

// FromService конвертирует доменную услугу
func FromService(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Duration:    s.DurationMinutes,
		Price:       s.Price.StringFixed(2),
		Category:    string(s.Category),
		IsActive:    s.IsActive,
	}
}

// FromAddOn конвертирует доменную опцию
func FromAddOn(a *domain.AddOn) AddOnResponse {
	return AddOnResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		Duration:    a.DurationMinutes,
		Price:       a.Price.StringFixed(2),
		IsActive:    a.IsActive,
	}
}

// FromAppointment конвертирует доменную запись
func FromAppointment(a *domain.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:               a.ID,
		AppointmentDate:  domain.FormatDate(a.Date),
		AppointmentTime:  a.Time.String(),
		Location:         a.Location,
		NeedsTransport:   a.NeedsTransport,
		Status:           string(a.Status),
		ConfirmationCode: a.ConfirmationCode,
		TotalDuration:    a.TotalDuration,
		TotalPrice:       a.TotalPrice.StringFixed(2),
		Notes:            a.Notes,
		Clients:          make([]AppointmentClientResponse, 0, len(a.Clients)),
		CreatedAt:        a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        a.UpdatedAt.Format(time.RFC3339),
	}

	if a.Customer != nil {
		resp.Customer = &CustomerResponse{
			ID:          a.Customer.ID,
			FirstName:   a.Customer.FirstName,
			LastName:    a.Customer.LastName,
			FullName:    a.Customer.FullName(),
			Email:       a.Customer.Email,
			Phone:       a.Customer.Phone,
			IsReturning: a.Customer.IsReturning,
		}
	}

	if a.CancelledAt != nil {
		resp.CancelledAt = ptr.Ptr(a.CancelledAt.Format(time.RFC3339))
	}

	for _, c := range a.Clients {
		client := AppointmentClientResponse{
			ClientNumber: c.ClientNumber,
			ServiceID:    c.ServiceID,
			AddOns:       make([]AddOnResponse, 0, len(c.AddOns)),
		}
		if c.Service != nil {
			client.Service = ptr.Ptr(FromService(c.Service))
		}
		for i := range c.AddOns {
			client.AddOns = append(client.AddOns, FromAddOn(&c.AddOns[i]))
		}
		resp.Clients = append(resp.Clients, client)
	}

	return resp
}

// FromAppointments конвертирует список записей
func FromAppointments(appts []*domain.Appointment) []*AppointmentResponse {
	result := make([]*AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		result = append(result, FromAppointment(a))
	}
	return result
}
