package notification

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/gomail.v2"

	"github.com/m04kA/LashBookingService/internal/domain"
	"github.com/m04kA/LashBookingService/pkg/logger"
)

type recordingSender struct {
	mu       sync.Mutex
	messages []*gomail.Message
	err      error
	delay    time.Duration
}

func (s *recordingSender) DialAndSend(m ...*gomail.Message) error {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, m...)
	return s.err
}

func (s *recordingSender) recipients() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var to []string
	for _, m := range s.messages {
		to = append(to, m.GetHeader("To")...)
	}
	return to
}

func sampleAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:               9,
		Customer:         &domain.Customer{FirstName: "Anna", LastName: "Lee", Email: "anna@example.com", Phone: "555-0100"},
		Date:             time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC),
		Time:             "10:00",
		Location:         "12 Main St",
		NeedsTransport:   true,
		TotalDuration:    130,
		TotalPrice:       decimal.RequireFromString("132"),
		ConfirmationCode: "HLS-AAAA2222",
		Clients: []domain.AppointmentClient{{
			ClientNumber: 1,
			ServiceID:    "classic-full",
			Service:      &domain.Service{ID: "classic-full", Name: "Classic Full Set"},
			AddOns:       []domain.AddOn{{ID: "lash-bath", Name: "Lash Bath"}},
		}},
	}
}

func observedLogger() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	return logger.NewWithCore(core), logs
}

func TestDispatcher_Disabled(t *testing.T) {
	sender := &recordingSender{}
	log, logs := observedLogger()
	d := NewDispatcherWithSender(sender, Settings{Enabled: false, AdminEmail: "admin@example.com"}, log)

	d.AppointmentCreated(context.Background(), sampleAppointment())

	assert.Empty(t, sender.recipients())
	assert.Equal(t, 1, logs.FilterMessageSnippet("Notifications disabled").Len())
}

func TestDispatcher_SendsCustomerAndAdmin(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcherWithSender(sender, Settings{
		Enabled:    true,
		From:       "studio@example.com",
		AdminEmail: "admin@example.com",
		Timeout:    time.Second,
	}, logger.NewNop())

	d.AppointmentCreated(context.Background(), sampleAppointment())

	assert.ElementsMatch(t, []string{"anna@example.com", "admin@example.com"}, sender.recipients())
}

func TestDispatcher_SkipsAdminWhenNotConfigured(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcherWithSender(sender, Settings{Enabled: true, From: "studio@example.com"}, logger.NewNop())

	d.AppointmentCreated(context.Background(), sampleAppointment())

	assert.Equal(t, []string{"anna@example.com"}, sender.recipients())
}

func TestDispatcher_LogsFailures(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp: 550 rejected")}
	log, logs := observedLogger()
	d := NewDispatcherWithSender(sender, Settings{Enabled: true, From: "studio@example.com"}, log)

	d.AppointmentCreated(context.Background(), sampleAppointment())

	assert.Equal(t, 1, logs.FilterMessageSnippet("Failed to send notifications").Len())
}

// perRecipientSender отклоняет письма на failTo сразу, остальные отправляет с задержкой
type perRecipientSender struct {
	recordingSender
	failTo string
}

func (s *perRecipientSender) DialAndSend(m ...*gomail.Message) error {
	for _, msg := range m {
		for _, to := range msg.GetHeader("To") {
			if to == s.failTo {
				return errors.New("smtp: 550 mailbox unavailable")
			}
		}
	}
	return s.recordingSender.DialAndSend(m...)
}

func TestDispatcher_CustomerFailureDoesNotCancelAdmin(t *testing.T) {
	sender := &perRecipientSender{
		recordingSender: recordingSender{delay: 50 * time.Millisecond},
		failTo:          "anna@example.com",
	}
	log, logs := observedLogger()
	d := NewDispatcherWithSender(sender, Settings{
		Enabled:    true,
		From:       "studio@example.com",
		AdminEmail: "admin@example.com",
		Timeout:    time.Second,
	}, log)

	d.AppointmentCreated(context.Background(), sampleAppointment())

	assert.Equal(t, []string{"admin@example.com"}, sender.recipients())
	assert.Equal(t, 1, logs.FilterMessageSnippet("Failed to send customer notification").Len())
	assert.Equal(t, 1, logs.FilterMessageSnippet("Sent admin notification").Len())
	assert.Equal(t, 0, logs.FilterMessageSnippet(ErrTimeout.Error()).Len())
	assert.Equal(t, 1, logs.FilterMessageSnippet("Failed to send notifications").Len())
}

func TestDispatcher_Timeout(t *testing.T) {
	d := NewDispatcherWithSender(&recordingSender{delay: 200 * time.Millisecond}, Settings{}, logger.NewNop())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := d.send(ctx, "customer", gomail.NewMessage())
	require.ErrorIs(t, err, ErrTimeout)
}

func TestMessages(t *testing.T) {
	appt := sampleAppointment()

	customer := customerMessage("studio@example.com", appt)
	assert.Equal(t, []string{"anna@example.com"}, customer.GetHeader("To"))
	assert.Contains(t, customer.GetHeader("Subject")[0], "HLS-AAAA2222")

	var body bytes.Buffer
	_, err := customer.WriteTo(&body)
	require.NoError(t, err)
	assert.Contains(t, body.String(), "Classic Full Set + Lash Bath")
	assert.Contains(t, body.String(), "Total: $132.00")
	assert.Contains(t, body.String(), "Transport: requested")

	admin := adminMessage("studio@example.com", "admin@example.com", appt)
	assert.Equal(t, []string{"anna@example.com"}, admin.GetHeader("Reply-To"))
	assert.Equal(t, "New appointment HLS-AAAA2222 on 2025-03-22 10:00", admin.GetHeader("Subject")[0])
}
