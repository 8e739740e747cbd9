package list_addons

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LashBookingService/internal/api/handlers"
	"github.com/m04kA/LashBookingService/internal/domain"
	"github.com/m04kA/LashBookingService/pkg/logger"
)

type stubCatalog []*domain.AddOn

func (s stubCatalog) ListAddOns(context.Context) ([]*domain.AddOn, error) {
	return s, nil
}

func TestHandler_Handle_EmptyListIsArray(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(stubCatalog(nil), logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/addons", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_Handle(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(stubCatalog{
		{ID: "bottom-lashes", Name: "Bottom Lashes", DurationMinutes: 15, Price: decimal.RequireFromString("15")},
	}, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/addons", nil))

	var body []handlers.AddOnResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "15.00", body[0].Price)
}
