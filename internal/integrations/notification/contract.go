package notification

import "gopkg.in/gomail.v2"

// Sender отправка писем. *gomail.Dialer удовлетворяет интерфейсу.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
