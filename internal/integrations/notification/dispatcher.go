package notification

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gopkg.in/gomail.v2"

	"github.com/m04kA/LashBookingService/internal/domain"
)

// Dispatcher рассылает уведомления о новых записях по SMTP.
// Отправка best-effort: ошибки логируются и не возвращаются вызывающему.
type Dispatcher struct {
	sender   Sender
	settings Settings
	log      Logger
}

// NewDispatcher создает диспетчер поверх SMTP-подключения
func NewDispatcher(host string, port int, username, password string, settings Settings, log Logger) *Dispatcher {
	return NewDispatcherWithSender(gomail.NewDialer(host, port, username, password), settings, log)
}

// NewDispatcherWithSender создает диспетчер с заданным отправителем
func NewDispatcherWithSender(sender Sender, settings Settings, log Logger) *Dispatcher {
	return &Dispatcher{
		sender:   sender,
		settings: settings,
		log:      log,
	}
}

// AppointmentCreated отправляет письмо клиенту и администратору параллельно
func (d *Dispatcher) AppointmentCreated(ctx context.Context, appt *domain.Appointment) {
	if !d.settings.Enabled {
		d.log.Info("Notifications disabled, skipping appointment id=%d code=%s", appt.ID, appt.ConfirmationCode)
		return
	}

	if d.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.settings.Timeout)
		defer cancel()
	}

	// Письма независимы: ошибка одного не прерывает отправку другого
	var g errgroup.Group

	if appt.Customer != nil && appt.Customer.Email != "" {
		g.Go(func() error {
			return d.deliver(ctx, appt, "customer", customerMessage(d.settings.From, appt))
		})
	}
	if d.settings.AdminEmail != "" {
		g.Go(func() error {
			return d.deliver(ctx, appt, "admin", adminMessage(d.settings.From, d.settings.AdminEmail, appt))
		})
	}

	if err := g.Wait(); err != nil {
		d.log.Error("Failed to send notifications for appointment id=%d: %v", appt.ID, err)
		return
	}

	d.log.Info("Notifications sent for appointment id=%d code=%s", appt.ID, appt.ConfirmationCode)
}

// deliver отправляет одно письмо и логирует его результат
func (d *Dispatcher) deliver(ctx context.Context, appt *domain.Appointment, recipient string, m *gomail.Message) error {
	if err := d.send(ctx, recipient, m); err != nil {
		d.log.Warn("Failed to send %s notification for appointment id=%d: %v", recipient, appt.ID, err)
		return err
	}
	d.log.Info("Sent %s notification for appointment id=%d", recipient, appt.ID)
	return nil
}

// send отправляет письмо, не дожидаясь SMTP дольше контекста
func (d *Dispatcher) send(ctx context.Context, recipient string, m *gomail.Message) error {
	done := make(chan error, 1)
	go func() {
		done <- d.sender.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrSendFailed, recipient, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %s: %v", ErrTimeout, recipient, ctx.Err())
	}
}
