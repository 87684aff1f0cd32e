package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2024-01-17", DateKey(time.Date(2024, 1, 17, 23, 59, 59, 0, time.UTC)))
}

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "quarta-feira volta para o domingo anterior",
			input:    time.Date(2024, 1, 17, 15, 30, 0, 0, time.UTC),
			expected: time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "domingo é o início da própria semana",
			input:    time.Date(2024, 1, 14, 18, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "sábado volta seis dias",
			input:    time.Date(2024, 1, 20, 8, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "semana atravessando a virada do ano",
			input:    time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC),
			expected: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StartOfWeek(tt.input))
		})
	}
}

func TestStartOfDayMonthYear(t *testing.T) {
	input := time.Date(2024, 6, 15, 13, 45, 30, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), StartOfDay(input))
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(input))
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), StartOfYear(input))
}

func TestParseDate(t *testing.T) {
	t.Run("data válida", func(t *testing.T) {
		date, err := ParseDate("2024-01-17")

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC), *date)
	})

	t.Run("data inválida", func(t *testing.T) {
		_, err := ParseDate("17/01/2024")

		assert.Error(t, err)
	})

	t.Run("vazio vira zero value", func(t *testing.T) {
		date, err := ParseDate("")

		require.NoError(t, err)
		assert.True(t, date.IsZero())
	})
}
