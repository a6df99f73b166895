//go:build unit

package booking_test

import (
	"testing"
	"time"

	"weekboard/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestWeekIDOf(t *testing.T) {
	testCases := []struct {
		name     string
		date     time.Time
		expected booking.WeekID
	}{
		{
			name:     "mid-year week",
			date:     time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC),
			expected: "2024-W10",
		},
		{
			name:     "single-digit week is zero padded",
			date:     time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC),
			expected: "2021-W01",
		},
		{
			name:     "end of December can belong to the next ISO year",
			date:     time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC),
			expected: "2025-W01",
		},
		{
			name:     "start of January can belong to the previous ISO year",
			date:     time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
			expected: "2020-W53",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, booking.WeekIDOf(tc.date))
		})
	}
}
