package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LashBookingService/internal/domain"
	"github.com/m04kA/LashBookingService/pkg/logger"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) ListBusinessHours(ctx context.Context) ([]*domain.BusinessHours, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]*domain.BusinessHours)
	return v, args.Error(1)
}

func (m *mockRepo) ListBlockedDates(ctx context.Context, from *time.Time) ([]*domain.BlockedDate, error) {
	args := m.Called(ctx, from)
	v, _ := args.Get(0).([]*domain.BlockedDate)
	return v, args.Error(1)
}

func TestService_ListBusinessHours(t *testing.T) {
	repo := &mockRepo{}
	repo.On("ListBusinessHours", mock.Anything).Return([]*domain.BusinessHours{
		{Weekday: domain.Monday, IsOpen: true, OpenTime: "18:00", CloseTime: "22:00"},
	}, nil)

	hours, err := NewService(repo, logger.NewNop()).ListBusinessHours(context.Background())
	require.NoError(t, err)
	assert.Len(t, hours, 1)
}

func TestService_ListBlockedDates_PassesFrom(t *testing.T) {
	from := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)
	repo := &mockRepo{}
	repo.On("ListBlockedDates", mock.Anything, &from).Return([]*domain.BlockedDate{{Date: from, Reason: "Holiday"}}, nil)

	dates, err := NewService(repo, logger.NewNop()).ListBlockedDates(context.Background(), &from)
	require.NoError(t, err)
	assert.Equal(t, "Holiday", dates[0].Reason)
}

func TestService_ListBlockedDates_Error(t *testing.T) {
	repo := &mockRepo{}
	repo.On("ListBlockedDates", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := NewService(repo, logger.NewNop()).ListBlockedDates(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInternal)
}
