package datevalid_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hodamousavipour/banking-dashboard-front/internal/utils/datevalid"
)

func TestIsValidCalendarDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"plain date", "2024-02-29", true},
		{"non leap year february 29", "2023-02-29", false},
		{"impossible day", "2024-02-30", false},
		{"month out of range", "2024-13-01", false},
		{"missing zero padding", "2024-2-01", false},
		{"slashes", "2024/02/01", false},
		{"full timestamp", "2024-02-01T10:00:00Z", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, datevalid.IsValidCalendarDate(tt.value))
		})
	}
}

func TestIsPastOrToday(t *testing.T) {
	now := time.Date(2024, 6, 15, 23, 30, 0, 0, time.UTC)

	assert.True(t, datevalid.IsPastOrToday("2024-06-15", now))
	assert.True(t, datevalid.IsPastOrToday("2024-06-14", now))
	assert.True(t, datevalid.IsPastOrToday("2000-01-01", now))
	assert.False(t, datevalid.IsPastOrToday("2024-06-16", now))
	assert.False(t, datevalid.IsPastOrToday("not-a-date", now))
}

func TestIsYearInRange(t *testing.T) {
	assert.True(t, datevalid.IsYearInRange("2000-01-01", 2000, 2024))
	assert.True(t, datevalid.IsYearInRange("2024-12-31", 2000, 2024))
	assert.False(t, datevalid.IsYearInRange("1999-12-31", 2000, 2024))
	assert.False(t, datevalid.IsYearInRange("2025-01-01", 2000, 2024))
	assert.False(t, datevalid.IsYearInRange("garbage", 2000, 2024))
}
