package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "Rs.0.00"},
		{"12.345", "Rs.12.35"},
		{"999", "Rs.999.00"},
		{"1000", "Rs.1,000.00"},
		{"123456", "Rs.1,23,456.00"},
		{"1234567.5", "Rs.12,34,567.50"},
		{"-2500", "-Rs.2,500.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(decimal.RequireFromString(tt.in)))
		})
	}
}
