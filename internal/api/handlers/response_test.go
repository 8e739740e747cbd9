package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LashBookingService/internal/domain"
)

func TestStatusForKind(t *testing.T) {
	tests := []struct {
		kind   domain.ErrorKind
		status int
	}{
		{domain.KindInvalidDateFormat, http.StatusBadRequest},
		{domain.KindMissingParameter, http.StatusBadRequest},
		{domain.KindDateBlocked, http.StatusBadRequest},
		{domain.KindOutsideBusinessHours, http.StatusBadRequest},
		{domain.KindServiceNotFound, http.StatusNotFound},
		{domain.KindAppointmentNotFound, http.StatusNotFound},
		{domain.KindSlotNotAvailable, http.StatusConflict},
		{domain.KindInvalidStatusTransition, http.StatusConflict},
		{domain.ErrorKind("something_else"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.status, StatusForKind(tt.kind))
		})
	}
}

func TestRespondDomainError(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := fmt.Errorf("create: %w", domain.ErrSlotNotAvailable)

	require.True(t, RespondDomainError(rec, wrapped))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, ErrorResponse{Code: "slot_not_available", Message: "Time slot already booked"}, body)

	assert.False(t, RespondDomainError(httptest.NewRecorder(), errors.New("db down")))
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "x", v.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.Error(t, DecodeJSON(r, &v))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.Error(t, DecodeJSON(r, &v))
}

func TestValidateStruct(t *testing.T) {
	type client struct {
		ServiceID string   `json:"serviceId" validate:"required"`
		AddOnIDs  []string `json:"addOnIds" validate:"unique"`
	}
	type request struct {
		Email   string   `json:"email" validate:"required,email"`
		Clients []client `json:"clients" validate:"required,min=1,dive"`
	}

	assert.Nil(t, ValidateStruct(request{Email: "a@b.co", Clients: []client{{ServiceID: "x"}}}))

	tests := []struct {
		name     string
		req      request
		wantKind domain.ErrorKind
		wantMsg  string
	}{
		{
			name:     "missing email",
			req:      request{Clients: []client{{ServiceID: "x"}}},
			wantKind: domain.KindMissingParameter,
			wantMsg:  "email is required",
		},
		{
			name:     "malformed email",
			req:      request{Email: "nope", Clients: []client{{ServiceID: "x"}}},
			wantKind: domain.KindInvalidInput,
			wantMsg:  "email must be a valid email",
		},
		{
			name:     "empty clients",
			req:      request{Email: "a@b.co", Clients: []client{}},
			wantKind: domain.KindMissingParameter,
			wantMsg:  "clients must contain at least 1 item(s)",
		},
		{
			name:     "missing nested service",
			req:      request{Email: "a@b.co", Clients: []client{{}}},
			wantKind: domain.KindMissingParameter,
			wantMsg:  "clients[0].serviceId is required",
		},
		{
			name:     "duplicate add-ons",
			req:      request{Email: "a@b.co", Clients: []client{{ServiceID: "x", AddOnIDs: []string{"a", "a"}}}},
			wantKind: domain.KindInvalidInput,
			wantMsg:  "clients[0].addOnIds must not contain duplicates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(tt.req)
			require.NotNil(t, verr)
			assert.Equal(t, tt.wantKind, verr.Kind)
			assert.Equal(t, tt.wantMsg, verr.Detail)
		})
	}
}

func TestPathInt64(t *testing.T) {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"appointmentId": "12"})
	id, err := PathInt64(r, "appointmentId")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	r = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"appointmentId": "-1"})
	_, err = PathInt64(r, "appointmentId")
	assert.Error(t, err)
}

func TestFromAppointment(t *testing.T) {
	cancelled := time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC)
	appt := &domain.Appointment{
		ID:               3,
		Customer:         &domain.Customer{ID: 1, FirstName: "Anna", LastName: "Lee", Email: "anna@example.com"},
		Date:             time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC),
		Time:             "09:30",
		Status:           domain.StatusCancelled,
		TotalDuration:    130,
		TotalPrice:       decimal.RequireFromString("132"),
		ConfirmationCode: "HLS-AAAA2222",
		CancelledAt:      &cancelled,
		Clients: []domain.AppointmentClient{{
			ClientNumber: 1,
			ServiceID:    "classic-full",
			Service:      &domain.Service{ID: "classic-full", Name: "Classic", DurationMinutes: 120, Price: decimal.RequireFromString("120")},
			AddOns:       []domain.AddOn{{ID: "lash-bath", Price: decimal.RequireFromString("10")}},
		}},
	}

	resp := FromAppointment(appt)
	assert.Equal(t, "2025-03-22", resp.AppointmentDate)
	assert.Equal(t, "09:30", resp.AppointmentTime)
	assert.Equal(t, "132.00", resp.TotalPrice)
	assert.Equal(t, "Anna Lee", resp.Customer.FullName)
	require.NotNil(t, resp.CancelledAt)
	assert.Equal(t, "2025-03-20T12:00:00Z", *resp.CancelledAt)
	require.Len(t, resp.Clients, 1)
	assert.Equal(t, "120.00", resp.Clients[0].Service.Price)
	assert.Equal(t, "10.00", resp.Clients[0].AddOns[0].Price)
}
