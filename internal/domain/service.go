package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceCategory groups lash services
type ServiceCategory string

const (
	CategoryClassic ServiceCategory = "classic"
	CategoryVolume  ServiceCategory = "volume"
	CategoryHybrid  ServiceCategory = "hybrid"
)

// Service is a bookable lash treatment
type Service struct {
	ID              string // slug, e.g. classic-natural
	Name            string
	Description     string
	DurationMinutes int
	Price           decimal.Decimal
	Category        ServiceCategory
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AddOn is an optional extra attached to a client's service
type AddOn struct {
	ID              string
	Name            string
	Description     string
	DurationMinutes int
	Price           decimal.Decimal
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
