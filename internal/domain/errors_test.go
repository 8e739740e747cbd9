package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesByKind(t *testing.T) {
	custom := NewError(KindSlotNotAvailable, "someone else took 10:00")

	assert.ErrorIs(t, custom, ErrSlotNotAvailable)
	assert.NotErrorIs(t, custom, ErrDateBlocked)

	wrapped := fmt.Errorf("create appointment: %w", custom)
	assert.ErrorIs(t, wrapped, ErrSlotNotAvailable)
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "Date is blocked", ErrDateBlocked.Error())
	assert.Equal(t, "date is required", MissingParameter("date").Error())
	assert.Equal(t, "invalid_input", (&Error{Kind: KindInvalidInput}).Error())
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(fmt.Errorf("wrap: %w", ErrBusinessClosed))
	assert.True(t, ok)
	assert.Equal(t, KindBusinessClosed, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}
