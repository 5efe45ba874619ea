package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Duration
		hasError bool
	}{
		{"5m", 5 * time.Minute, false},
		{"2h", 2 * time.Hour, false},
		{"1d", 24 * time.Hour, false},
		{"90d", 90 * 24 * time.Hour, false},
		{"1h30m", 90 * time.Minute, false},
		{"1.5h", 90 * time.Minute, false},
		{"300ms", 300 * time.Millisecond, false},
		{" 30s ", 30 * time.Second, false},
		{"0", 0, false},
		{"0m", 0, false},
		{"5 minutes", 0, true},
		{"-5m", 0, true},
		{"-1h30m", 0, true},
		{"1.5d", 0, true},
		{"5", 0, true},
		{"", 0, true},
	}

	for _, tc := range tests {
		val, err := ParseDuration(tc.input)
		if tc.hasError {
			assert.Error(t, err, "Expected error for input: %s", tc.input)
		} else {
			assert.NoError(t, err, "Unexpected error for input: %s", tc.input)
			assert.Equal(t, tc.expected, val, "Mismatch for input: %s", tc.input)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-31")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2024-01-31T10:15:00.000Z")
	assert.NoError(t, err)
	assert.Equal(t, 10, d.Hour())

	_, err = ParseDate("31/01/2024")
	assert.Error(t, err)
}
