package notification

import "time"

// Settings параметры рассылки
type Settings struct {
	Enabled    bool
	From       string
	AdminEmail string
	Timeout    time.Duration
}
