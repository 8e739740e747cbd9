package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LashBookingService/internal/domain"
	"github.com/m04kA/LashBookingService/pkg/logger"
)

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) GetServicesByIDs(ctx context.Context, ids []string) ([]*domain.Service, error) {
	args := m.Called(ctx, ids)
	services, _ := args.Get(0).([]*domain.Service)
	return services, args.Error(1)
}

func (m *mockCatalog) GetAddOnsByIDs(ctx context.Context, ids []string) ([]*domain.AddOn, error) {
	args := m.Called(ctx, ids)
	addOns, _ := args.Get(0).([]*domain.AddOn)
	return addOns, args.Error(1)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var (
	classicNatural = &domain.Service{ID: "classic-natural", DurationMinutes: 90, Price: dec("120.00"), IsActive: true}
	volumeFull     = &domain.Service{ID: "volume-full", DurationMinutes: 150, Price: dec("220.00"), IsActive: true}
	retired        = &domain.Service{ID: "retired", DurationMinutes: 60, Price: dec("80.00"), IsActive: false}

	lashBath    = &domain.AddOn{ID: "lash-bath", DurationMinutes: 10, Price: dec("15.00"), IsActive: true}
	coloredTips = &domain.AddOn{ID: "colored-tips", DurationMinutes: 15, Price: dec("25.00"), IsActive: true}
	oldSerum    = &domain.AddOn{ID: "old-serum", DurationMinutes: 5, Price: dec("10.00"), IsActive: false}
)

func newCatalog() *mockCatalog {
	m := &mockCatalog{}
	m.On("GetServicesByIDs", mock.Anything, mock.Anything).
		Return([]*domain.Service{classicNatural, volumeFull, retired}, nil)
	m.On("GetAddOnsByIDs", mock.Anything, mock.Anything).
		Return([]*domain.AddOn{lashBath, coloredTips, oldSerum}, nil)
	return m
}

func TestAggregator_SingleClientWithTransport(t *testing.T) {
	agg := NewAggregator(newCatalog(), true, logger.NewNop())

	totals, err := agg.ComputeTotals(context.Background(), []ClientSelection{
		{ServiceID: "classic-natural"},
	}, true)
	require.NoError(t, err)

	assert.Equal(t, 90, totals.Duration)
	assert.Equal(t, "122.00", totals.Price.StringFixed(2))
	assert.Equal(t, "120.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "2.00", totals.TransportFee.StringFixed(2))
}

func TestAggregator_MultipleClientsWithAddOns(t *testing.T) {
	agg := NewAggregator(newCatalog(), true, logger.NewNop())

	totals, err := agg.ComputeTotals(context.Background(), []ClientSelection{
		{ServiceID: "classic-natural", AddOnIDs: []string{"lash-bath", "colored-tips"}},
		{ServiceID: "volume-full", AddOnIDs: []string{"lash-bath"}},
	}, false)
	require.NoError(t, err)

	// 90+10+15 + 150+10
	assert.Equal(t, 275, totals.Duration)
	// 120+15+25 + 220+15
	assert.Equal(t, "395.00", totals.Price.StringFixed(2))
	assert.True(t, totals.TransportFee.IsZero())

	require.Len(t, totals.Clients, 2)
	assert.Equal(t, 1, totals.Clients[0].ClientNumber)
	assert.Equal(t, 115, totals.Clients[0].Duration)
	assert.Equal(t, "160.00", totals.Clients[0].Price.StringFixed(2))
	assert.Equal(t, 2, totals.Clients[1].ClientNumber)
	assert.Len(t, totals.Clients[1].AddOns, 1)
}

func TestAggregator_OrderIndependent(t *testing.T) {
	agg := NewAggregator(newCatalog(), true, logger.NewNop())
	a := ClientSelection{ServiceID: "classic-natural", AddOnIDs: []string{"colored-tips"}}
	b := ClientSelection{ServiceID: "volume-full", AddOnIDs: []string{"lash-bath"}}

	first, err := agg.ComputeTotals(context.Background(), []ClientSelection{a, b}, true)
	require.NoError(t, err)
	second, err := agg.ComputeTotals(context.Background(), []ClientSelection{b, a}, true)
	require.NoError(t, err)

	assert.Equal(t, first.Duration, second.Duration)
	assert.True(t, first.Price.Equal(second.Price))
}

func TestAggregator_NotFound(t *testing.T) {
	tests := []struct {
		name      string
		strict    bool
		selection ClientSelection
		wantErr   error
	}{
		{name: "unknown service", strict: true, selection: ClientSelection{ServiceID: "mega-volume"}, wantErr: domain.ErrServiceNotFound},
		{name: "unknown add-on", strict: true, selection: ClientSelection{ServiceID: "classic-natural", AddOnIDs: []string{"glitter"}}, wantErr: domain.ErrAddOnNotFound},
		{name: "inactive service strict", strict: true, selection: ClientSelection{ServiceID: "retired"}, wantErr: domain.ErrServiceNotFound},
		{name: "inactive add-on strict", strict: true, selection: ClientSelection{ServiceID: "classic-natural", AddOnIDs: []string{"old-serum"}}, wantErr: domain.ErrAddOnNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := NewAggregator(newCatalog(), tt.strict, logger.NewNop())
			_, err := agg.ComputeTotals(context.Background(), []ClientSelection{tt.selection}, false)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAggregator_InactiveAllowedWhenNotStrict(t *testing.T) {
	agg := NewAggregator(newCatalog(), false, logger.NewNop())

	totals, err := agg.ComputeTotals(context.Background(), []ClientSelection{
		{ServiceID: "retired", AddOnIDs: []string{"old-serum"}},
	}, false)
	require.NoError(t, err)

	assert.Equal(t, 65, totals.Duration)
	assert.Equal(t, "90.00", totals.Price.StringFixed(2))
}

func TestAggregator_BulkLoadsUniqueIDs(t *testing.T) {
	catalog := &mockCatalog{}
	catalog.On("GetServicesByIDs", mock.Anything, []string{"classic-natural"}).
		Return([]*domain.Service{classicNatural}, nil).Once()
	catalog.On("GetAddOnsByIDs", mock.Anything, []string{"lash-bath"}).
		Return([]*domain.AddOn{lashBath}, nil).Once()

	agg := NewAggregator(catalog, true, logger.NewNop())
	totals, err := agg.ComputeTotals(context.Background(), []ClientSelection{
		{ServiceID: "classic-natural", AddOnIDs: []string{"lash-bath"}},
		{ServiceID: "classic-natural", AddOnIDs: []string{"lash-bath"}},
	}, false)
	require.NoError(t, err)

	assert.Equal(t, 200, totals.Duration)
	catalog.AssertExpectations(t)
}

func TestAggregator_RepositoryError(t *testing.T) {
	catalog := &mockCatalog{}
	catalog.On("GetServicesByIDs", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	agg := NewAggregator(catalog, true, logger.NewNop())
	_, err := agg.ComputeTotals(context.Background(), []ClientSelection{{ServiceID: "classic-natural"}}, false)

	assert.ErrorIs(t, err, ErrInternal)
}
