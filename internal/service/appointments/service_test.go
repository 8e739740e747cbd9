package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LashBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/LashBookingService/internal/infra/storage/appointment"
	"github.com/m04kA/LashBookingService/pkg/logger"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*domain.Appointment)
	return v, args.Error(1)
}

func (m *mockRepo) GetByConfirmationCode(ctx context.Context, code string) (*domain.Appointment, error) {
	args := m.Called(ctx, code)
	v, _ := args.Get(0).(*domain.Appointment)
	return v, args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	args := m.Called(ctx, filter)
	v, _ := args.Get(0).([]*domain.Appointment)
	return v, args.Error(1)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id int64, from, to domain.AppointmentStatus) error {
	return m.Called(ctx, id, from, to).Error(0)
}

// passthroughTx выполняет функцию без транзакции
type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (passthroughTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newService(repo *mockRepo) *Service {
	return NewService(repo, passthroughTx{}, logger.NewNop())
}

func TestService_GetByConfirmationCode(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByConfirmationCode", mock.Anything, "HLS-ABCD2345").
		Return(&domain.Appointment{ID: 5, ConfirmationCode: "HLS-ABCD2345"}, nil)
	repo.On("GetByConfirmationCode", mock.Anything, "HLS-ZZZZZZZZ").
		Return(nil, appointmentRepo.ErrAppointmentNotFound)

	svc := newService(repo)

	appt, err := svc.GetByConfirmationCode(context.Background(), " hls-abcd2345 ")
	require.NoError(t, err)
	assert.Equal(t, int64(5), appt.ID)

	_, err = svc.GetByConfirmationCode(context.Background(), "HLS-ZZZZZZZZ")
	assert.ErrorIs(t, err, domain.ErrAppointmentNotFound)

	_, err = svc.GetByConfirmationCode(context.Background(), "  ")
	assert.ErrorIs(t, err, domain.ErrMissingParameter)
}

func TestService_GetByID_InternalError(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, int64(1)).Return(nil, errors.New("db down"))

	_, err := newService(repo).GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_List_RejectsInvertedRange(t *testing.T) {
	from := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := newService(&mockRepo{}).List(context.Background(), domain.AppointmentFilter{DateFrom: &from, DateTo: &to})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name    string
		current domain.AppointmentStatus
		next    domain.AppointmentStatus
		wantErr error
	}{
		{name: "confirm pending", current: domain.StatusPending, next: domain.StatusConfirmed},
		{name: "complete confirmed", current: domain.StatusConfirmed, next: domain.StatusCompleted},
		{name: "cancel confirmed", current: domain.StatusConfirmed, next: domain.StatusCancelled},
		{name: "complete pending", current: domain.StatusPending, next: domain.StatusCompleted, wantErr: domain.ErrInvalidStatusTransition},
		{name: "reopen cancelled", current: domain.StatusCancelled, next: domain.StatusPending, wantErr: domain.ErrInvalidStatusTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			repo.On("GetByID", mock.Anything, int64(9)).Return(&domain.Appointment{ID: 9, Status: tt.current}, nil).Once()
			repo.On("UpdateStatus", mock.Anything, int64(9), tt.current, tt.next).Return(nil).Maybe()
			repo.On("GetByID", mock.Anything, int64(9)).Return(&domain.Appointment{ID: 9, Status: tt.next}, nil).Maybe()

			appt, err := newService(repo).UpdateStatus(context.Background(), 9, tt.next)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.next, appt.Status)
		})
	}
}

func TestService_Cancel_NotFound(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, int64(404)).Return(nil, appointmentRepo.ErrAppointmentNotFound)

	_, err := newService(repo).Cancel(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrAppointmentNotFound)
}

func TestService_UpdateStatus_StaleStatus(t *testing.T) {
	repo := &mockRepo{}
	// Прочитан pending, но до обновления запись уже отменили
	repo.On("GetByID", mock.Anything, int64(9)).Return(&domain.Appointment{ID: 9, Status: domain.StatusPending}, nil).Once()
	repo.On("UpdateStatus", mock.Anything, int64(9), domain.StatusPending, domain.StatusConfirmed).
		Return(appointmentRepo.ErrStatusChanged).Once()

	_, err := newService(repo).UpdateStatus(context.Background(), 9, domain.StatusConfirmed)

	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
	repo.AssertExpectations(t)
}

func TestService_UpdateStatus_SlotTaken(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, int64(9)).Return(&domain.Appointment{ID: 9, Status: domain.StatusPending}, nil).Once()
	repo.On("UpdateStatus", mock.Anything, int64(9), domain.StatusPending, domain.StatusConfirmed).
		Return(appointmentRepo.ErrSlotTaken).Once()

	_, err := newService(repo).UpdateStatus(context.Background(), 9, domain.StatusConfirmed)

	assert.ErrorIs(t, err, domain.ErrSlotNotAvailable)
	assert.NotErrorIs(t, err, ErrInternal)
}
