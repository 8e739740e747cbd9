package pricing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/LashBookingService/internal/domain"
)

// Aggregator считает длительность и стоимость записи по выбору клиентов
type Aggregator struct {
	catalogRepo CatalogRepository
	strict      bool
	logger      Logger
}

// NewAggregator создает агрегатор. В strict режиме неактивные позиции каталога считаются ненайденными.
func NewAggregator(catalogRepo CatalogRepository, strict bool, logger Logger) *Aggregator {
	return &Aggregator{
		catalogRepo: catalogRepo,
		strict:      strict,
		logger:      logger,
	}
}

// ComputeTotals суммирует услуги и опции всех клиентов.
// Неизвестная услуга -> domain.ErrServiceNotFound, неизвестная опция -> domain.ErrAddOnNotFound.
// Если нужен выезд, к цене добавляется domain.TransportSurcharge.
// Результат не зависит от порядка клиентов.
func (a *Aggregator) ComputeTotals(ctx context.Context, selections []ClientSelection, needsTransport bool) (*Totals, error) {
	// 1. Собираем уникальные ID для пакетной загрузки
	serviceIDs, addOnIDs := collectIDs(selections)

	// 2. Загружаем каталог
	services, err := a.catalogRepo.GetServicesByIDs(ctx, serviceIDs)
	if err != nil {
		a.logger.Error("ComputeTotals: failed to load services %v: %v", serviceIDs, err)
		return nil, fmt.Errorf("%w: ComputeTotals - load services: %v", ErrInternal, err)
	}
	addOns, err := a.catalogRepo.GetAddOnsByIDs(ctx, addOnIDs)
	if err != nil {
		a.logger.Error("ComputeTotals: failed to load add-ons %v: %v", addOnIDs, err)
		return nil, fmt.Errorf("%w: ComputeTotals - load add-ons: %v", ErrInternal, err)
	}

	serviceByID := make(map[string]*domain.Service, len(services))
	for _, s := range services {
		if a.strict && !s.IsActive {
			continue
		}
		serviceByID[s.ID] = s
	}
	addOnByID := make(map[string]*domain.AddOn, len(addOns))
	for _, ao := range addOns {
		if a.strict && !ao.IsActive {
			continue
		}
		addOnByID[ao.ID] = ao
	}

	// 3. Считаем по клиентам
	totals := &Totals{
		Subtotal:     decimal.Zero,
		TransportFee: decimal.Zero,
		Clients:      make([]ClientTotals, 0, len(selections)),
	}

	for i, sel := range selections {
		service, ok := serviceByID[sel.ServiceID]
		if !ok {
			a.logger.Warn("ComputeTotals: service %q not found", sel.ServiceID)
			return nil, domain.NewError(domain.KindServiceNotFound, fmt.Sprintf("Service not found: %s", sel.ServiceID))
		}

		client := ClientTotals{
			ClientNumber: i + 1,
			Service:      service,
			AddOns:       make([]*domain.AddOn, 0, len(sel.AddOnIDs)),
			Duration:     service.DurationMinutes,
			Price:        service.Price,
		}

		for _, id := range sel.AddOnIDs {
			addOn, ok := addOnByID[id]
			if !ok {
				a.logger.Warn("ComputeTotals: add-on %q not found", id)
				return nil, domain.NewError(domain.KindAddOnNotFound, fmt.Sprintf("Add-on not found: %s", id))
			}
			client.AddOns = append(client.AddOns, addOn)
			client.Duration += addOn.DurationMinutes
			client.Price = client.Price.Add(addOn.Price)
		}

		totals.Duration += client.Duration
		totals.Subtotal = totals.Subtotal.Add(client.Price)
		totals.Clients = append(totals.Clients, client)
	}

	// 4. Выезд влияет только на цену
	if needsTransport {
		totals.TransportFee = domain.TransportSurcharge
	}
	totals.Price = totals.Subtotal.Add(totals.TransportFee)

	return totals, nil
}

func collectIDs(selections []ClientSelection) (serviceIDs, addOnIDs []string) {
	seenServices := make(map[string]struct{})
	seenAddOns := make(map[string]struct{})

	for _, sel := range selections {
		if _, ok := seenServices[sel.ServiceID]; !ok {
			seenServices[sel.ServiceID] = struct{}{}
			serviceIDs = append(serviceIDs, sel.ServiceID)
		}
		for _, id := range sel.AddOnIDs {
			if _, ok := seenAddOns[id]; !ok {
				seenAddOns[id] = struct{}{}
				addOnIDs = append(addOnIDs, id)
			}
		}
	}

	return serviceIDs, addOnIDs
}
