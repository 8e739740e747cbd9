package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/m04kA/LashBookingService/internal/domain"
)

// ClientSelection выбор одного клиента: услуга и дополнительные опции
type ClientSelection struct {
	ServiceID string
	AddOnIDs  []string
}

// ClientTotals длительность и стоимость для одного клиента
type ClientTotals struct {
	ClientNumber int // с 1
	Service      *domain.Service
	AddOns       []*domain.AddOn
	Duration     int
	Price        decimal.Decimal
}

// Totals итог по записи.
// Price = Subtotal + TransportFee, транспорт на длительность не влияет.
type Totals struct {
	Duration     int
	Subtotal     decimal.Decimal
	TransportFee decimal.Decimal
	Price        decimal.Decimal
	Clients      []ClientTotals
}
