package cancel_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LashBookingService/internal/domain"
	"github.com/m04kA/LashBookingService/pkg/logger"
)

type stubService struct {
	statuses map[int64]domain.AppointmentStatus
}

func (s *stubService) Cancel(_ context.Context, id int64) (*domain.Appointment, error) {
	status, ok := s.statuses[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	if !status.CanTransitionTo(domain.StatusCancelled) {
		return nil, domain.NewError(domain.KindInvalidStatusTransition, "Cannot change status")
	}
	now := time.Date(2025, 3, 20, 9, 0, 0, 0, time.UTC)
	s.statuses[id] = domain.StatusCancelled
	return &domain.Appointment{ID: id, Status: domain.StatusCancelled, CancelledAt: &now}, nil
}

func del(svc *stubService, id string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/appointments/{appointmentId}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodDelete)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/appointments/"+id, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	svc := &stubService{statuses: map[int64]domain.AppointmentStatus{1: domain.StatusPending, 2: domain.StatusCompleted}}

	rec := del(svc, "1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"cancelled"`)
	assert.Contains(t, rec.Body.String(), `"cancelledAt":"2025-03-20T09:00:00Z"`)

	assert.Equal(t, http.StatusConflict, del(svc, "1").Code)
	assert.Equal(t, http.StatusConflict, del(svc, "2").Code)
	assert.Equal(t, http.StatusNotFound, del(svc, "3").Code)
	assert.Equal(t, http.StatusBadRequest, del(svc, "0").Code)
}
