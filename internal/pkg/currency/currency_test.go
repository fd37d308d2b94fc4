package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "Rp0"},
		{"1500", "Rp1.500"},
		{"505750", "Rp505.750"},
		{"5095000", "Rp5.095.000"},
		{"11500.49", "Rp11.500"},
	}

	for _, tt := range tests {
		got := FormatRupiah(decimal.RequireFromString(tt.amount))
		assert.Equal(t, tt.want, got, "amount %s", tt.amount)
	}
}

func TestFormatRupiahNegative(t *testing.T) {
	got := FormatRupiah(decimal.RequireFromString("-88500"))
	assert.Equal(t, "Rp-88.500", got)
}
