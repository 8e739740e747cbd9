package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/LashBookingService/pkg/types"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-22")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2025-03-22", FormatDate(d))

	for _, in := range []string{"", "22-03-2025", "2025/03/22", "2025-02-30", "tomorrow"} {
		_, err := ParseDate(in)
		assert.ErrorIs(t, err, ErrInvalidDateFormat, in)
	}
}

func TestParseTime(t *testing.T) {
	tm, err := ParseTime("9:30")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:30"), tm)

	for _, in := range []string{"", "25:00", "10:60", "10am", "10-00"} {
		_, err := ParseTime(in)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat, in)
	}
}
