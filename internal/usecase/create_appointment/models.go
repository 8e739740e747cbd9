package create_appointment

import (
	"github.com/m04kA/LashBookingService/internal/domain"
	"github.com/m04kA/LashBookingService/internal/service/pricing"
)

// Request модель запроса на создание записи (дата и время в формате API)
type Request struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	IsReturning bool

	Location       string
	NeedsTransport bool
	Date           string // YYYY-MM-DD
	Time           string // HH:MM
	Notes          string
	Clients        []Client
}

// Client выбор одного клиента
type Client struct {
	ServiceID string
	AddOnIDs  []string
}

// Response созданная запись и расчет стоимости по клиентам
type Response struct {
	Appointment *domain.Appointment
	Totals      *pricing.Totals
}
