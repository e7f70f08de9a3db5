package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	date, err := ParseMonth("2024-04")
	require.NoError(t, err)
	assert.Equal(t, 2024, date.Year())
	assert.Equal(t, time.April, date.Month())
	assert.Equal(t, 1, date.Day())

	_, err = ParseMonth("04/2024")
	assert.Error(t, err)
}

func TestEndOfMonth(t *testing.T) {
	tests := []struct {
		name        string
		date        time.Time
		expectedDay int
	}{
		{
			name:        "Mês de 30 dias",
			date:        time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
			expectedDay: 30,
		},
		{
			name:        "Mês de 31 dias",
			date:        time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC),
			expectedDay: 31,
		},
		{
			name:        "Fevereiro em ano bissexto",
			date:        time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			expectedDay: 29,
		},
		{
			name:        "Fevereiro em ano comum",
			date:        time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC),
			expectedDay: 28,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end := EndOfMonth(tt.date)
			assert.Equal(t, tt.expectedDay, end.Day())
			assert.Equal(t, tt.date.Month(), end.Month())
			assert.Equal(t, tt.date.Year(), end.Year())
		})
	}
}
