package check_availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LashBookingService/internal/domain"
	checkAvailability "github.com/m04kA/LashBookingService/internal/usecase/check_availability"
	"github.com/m04kA/LashBookingService/pkg/logger"
)

type stubUseCase struct {
	resp *checkAvailability.Response
	err  error
	got  *checkAvailability.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	s.got = req
	return s.resp, s.err
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/appointments/check-availability", strings.NewReader(body)))
	return rec
}

func TestHandler_Handle_Available(t *testing.T) {
	uc := &stubUseCase{resp: &checkAvailability.Response{Available: true}}

	rec := post(NewHandler(uc, logger.NewNop()), `{"appointmentDate":"2025-03-22","appointmentTime":"10:00","duration":120}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"available":true}`, rec.Body.String())
	assert.Equal(t, "2025-03-22", uc.got.Date)
	require.NotNil(t, uc.got.Duration)
	assert.Equal(t, 120, *uc.got.Duration)
}

func TestHandler_Handle_Unavailable(t *testing.T) {
	uc := &stubUseCase{resp: &checkAvailability.Response{
		Available: false,
		Reason:    "Time slot already booked",
		Code:      domain.KindSlotNotAvailable,
	}}

	rec := post(NewHandler(uc, logger.NewNop()), `{"appointmentDate":"2025-03-22","appointmentTime":"10:00"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"available":false,"reason":"Time slot already booked","code":"slot_not_available"}`, rec.Body.String())
	assert.Nil(t, uc.got.Duration)
}

func TestHandler_Handle_Errors(t *testing.T) {
	rec := post(NewHandler(&stubUseCase{}, logger.NewNop()), `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(NewHandler(&stubUseCase{err: domain.ErrInvalidTimeFormat}, logger.NewNop()), `{"appointmentDate":"2025-03-22","appointmentTime":"25:00"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"invalid_time_format"`)

	rec = post(NewHandler(&stubUseCase{err: checkAvailability.ErrInternal}, logger.NewNop()), `{}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
