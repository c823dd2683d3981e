package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/plureonic/cashflow/internal/model"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		wantErr  bool
	}{
		{
			name:     "plain amount",
			input:    "1200",
			expected: 1200,
		},
		{
			name:     "decimal amount",
			input:    "49.99",
			expected: 49.99,
		},
		{
			name:     "dollar prefix",
			input:    "$3000",
			expected: 3000,
		},
		{
			name:     "surrounding whitespace",
			input:    " 42 ",
			expected: 42,
		},
		{
			name:     "zero",
			input:    "0",
			expected: 0,
		},
		{
			name:    "negative amount",
			input:   "-5",
			wantErr: true,
		},
		{
			name:    "not a number",
			input:   "lots",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 0)
		})
	}
}

func TestFormatSchedule(t *testing.T) {
	end := model.NewMonth(2024, time.June)

	tests := []struct {
		name     string
		txn      model.Transaction
		expected string
	}{
		{
			name: "one-time",
			txn: model.Transaction{
				StartMonth: model.NewMonth(2024, time.February),
			},
			expected: "2024-02",
		},
		{
			name: "open-ended recurring",
			txn: model.Transaction{
				StartMonth: model.NewMonth(2024, time.January),
				Recurring:  true,
			},
			expected: "2024-01 onward",
		},
		{
			name: "bounded recurring",
			txn: model.Transaction{
				StartMonth: model.NewMonth(2024, time.January),
				Recurring:  true,
				EndMonth:   &end,
			},
			expected: "2024-01 to 2024-06",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatSchedule(tt.txn))
		})
	}
}
