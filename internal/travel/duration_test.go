package travel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTripLength(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{"same day", "2024-01-01", "2024-01-01", "1 day"},
		{"one day", "2024-01-01", "2024-01-02", "1 day"},
		{"end before start", "2024-01-05", "2024-01-01", "1 day"},
		{"three days", "2024-01-01", "2024-01-04", "3 days"},
		{"six days", "2024-01-01", "2024-01-07", "6 days"},
		{"exactly one week", "2024-01-01", "2024-01-08", "1 week"},
		{"two weeks", "2024-01-01", "2024-01-15", "2 weeks"},
		{"partial week rounds up", "2024-01-01", "2024-01-30", "5 weeks"},
		{"one month", "2024-01-01", "2024-01-31", "1 month"},
		{"partial month rounds up", "2024-01-01", "2024-02-15", "2 months"},
		{"one year", "2023-01-01", "2024-01-01", "1 year"},
		{"malformed start", "not-a-date", "2024-01-01", UnknownDuration},
		{"malformed end", "2024-01-01", "01/15/2024", UnknownDuration},
		{"missing start", "", "2024-01-01", UnknownDuration},
		{"missing end", "2024-01-01", "", UnknownDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TripLength(tt.start, tt.end))
		})
	}
}

func TestTripLengthRoundsUpYears(t *testing.T) {
	// 2024 is a leap year, so this span is 366 days and tips into the next
	// year bucket under ceiling rounding.
	assert.Equal(t, "2 years", TripLength("2024-01-01", "2025-01-01"))
	assert.Equal(t, "2 years", TripLength("2023-01-01", "2024-07-01"))
}
