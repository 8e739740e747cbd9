package notification

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/m04kA/LashBookingService/internal/domain"
)

// customerMessage письмо клиенту с кодом подтверждения
func customerMessage(from string, appt *domain.Appointment) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", appt.Customer.Email)
	m.SetHeader("Subject", fmt.Sprintf("Your appointment request %s", appt.ConfirmationCode))

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", appt.Customer.FirstName)
	b.WriteString("We have received your appointment request.\n\n")
	writeSummary(&b, appt)
	b.WriteString("\nWe will contact you to confirm the appointment.\n")

	m.SetBody("text/plain", b.String())
	return m
}

// adminMessage уведомление администратора о новой записи
func adminMessage(from, to string, appt *domain.Appointment) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	if appt.Customer != nil && appt.Customer.Email != "" {
		m.SetHeader("Reply-To", appt.Customer.Email)
	}
	m.SetHeader("Subject", fmt.Sprintf("New appointment %s on %s %s",
		appt.ConfirmationCode, domain.FormatDate(appt.Date), appt.Time))

	var b strings.Builder
	if appt.Customer != nil {
		fmt.Fprintf(&b, "Customer: %s <%s>, %s\n", appt.Customer.FullName(), appt.Customer.Email, appt.Customer.Phone)
		if appt.Customer.IsReturning {
			b.WriteString("Returning customer\n")
		}
	}
	writeSummary(&b, appt)
	if appt.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", appt.Notes)
	}

	m.SetBody("text/plain", b.String())
	return m
}

func writeSummary(b *strings.Builder, appt *domain.Appointment) {
	fmt.Fprintf(b, "Confirmation code: %s\n", appt.ConfirmationCode)
	fmt.Fprintf(b, "Date: %s at %s\n", domain.FormatDate(appt.Date), appt.Time)
	fmt.Fprintf(b, "Location: %s\n", appt.Location)
	if appt.NeedsTransport {
		b.WriteString("Transport: requested\n")
	}
	for _, c := range appt.Clients {
		name := c.ServiceID
		if c.Service != nil {
			name = c.Service.Name
		}
		fmt.Fprintf(b, "Client %d: %s", c.ClientNumber, name)
		if len(c.AddOns) > 0 {
			names := make([]string, 0, len(c.AddOns))
			for _, a := range c.AddOns {
				names = append(names, a.Name)
			}
			fmt.Fprintf(b, " + %s", strings.Join(names, ", "))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(b, "Duration: %d min\n", appt.TotalDuration)
	fmt.Fprintf(b, "Total: $%s\n", appt.TotalPrice.StringFixed(2))
}
