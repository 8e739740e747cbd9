package list_business_hours

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LashBookingService/internal/domain"
	"github.com/m04kA/LashBookingService/pkg/logger"
)

type stubSchedule []*domain.BusinessHours

func (s stubSchedule) ListBusinessHours(context.Context) ([]*domain.BusinessHours, error) {
	return s, nil
}

func TestHandler_Handle(t *testing.T) {
	h := NewHandler(stubSchedule{
		{Weekday: domain.Monday, IsOpen: true, OpenTime: "18:00", CloseTime: "22:00"},
		{Weekday: domain.Sunday, IsOpen: false},
	}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/business-hours", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
		{"weekday":0,"weekdayDisplay":"Monday","isOpen":true,"openTime":"18:00","closeTime":"22:00"},
		{"weekday":6,"weekdayDisplay":"Sunday","isOpen":false,"openTime":null,"closeTime":null}
	]`, rec.Body.String())
}
