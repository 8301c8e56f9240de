package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord_Valid(t *testing.T) {
	rec, err := NewRecord("Code review", "2025-05-05", 2.5)
	require.NoError(t, err)

	assert.Equal(t, "Code review", rec.Task)
	assert.Equal(t, "2025-05-05", rec.Date)
	assert.Equal(t, 2.5, rec.Hours)
	assert.WithinDuration(t, time.Now(), rec.Timestamp, 5*time.Second)
}

func TestNewRecord_DateDefaultsToToday(t *testing.T) {
	rec, err := NewRecord("standup", "", 0)
	require.NoError(t, err)

	assert.Equal(t, time.Now().Format(DateLayout), rec.Date)
	assert.Equal(t, 0.0, rec.Hours)
}

func TestNewRecord_TrimsDescription(t *testing.T) {
	rec, err := NewRecord("  fix flaky test  ", "2025-05-05", 1)
	require.NoError(t, err)
	assert.Equal(t, "fix flaky test", rec.Task)
}

func TestNewRecord_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		task    string
		date    string
		hours   float64
		wantMsg string
	}{
		{"empty task", "", "2025-05-05", 1, "task description"},
		{"blank task", "   ", "2025-05-05", 1, "task description"},
		{"bad date layout", "review", "05/05/2025", 1, "YYYY-MM-DD"},
		{"not a date", "review", "not-a-date", 1, "YYYY-MM-DD"},
		{"negative hours", "review", "2025-05-05", -0.5, "non-negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecord(tt.task, tt.date, tt.hours)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "2.5", FormatHours(2.5))
	assert.Equal(t, "0", FormatHours(0))
	assert.Equal(t, "8", FormatHours(8.0))
	assert.Equal(t, "1.25", FormatHours(1.25))
}
