package leaderboard

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatWager(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"1234.5", "$1,234.50"},
		{"0.1", "$0.10"},
		{"1000000", "$1,000,000.00"},
		{"99.999", "$100.00"},
		{"0", "$0.00"},
		{"1234567890123456.78", "$1,234,567,890,123,456.78"},
		{"0.105", "$0.11"},
	}

	for _, tt := range tests {
		if got := FormatWager(decimal.RequireFromString(tt.amount)); got != tt.want {
			t.Errorf("FormatWager(%s) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatPrize(t *testing.T) {
	if got := FormatPrize(decimal.NewFromInt(100)); got != "$100" {
		t.Errorf("FormatPrize(100) = %q", got)
	}
	if got := FormatPrize(decimal.Zero); got != "$0" {
		t.Errorf("FormatPrize(0) = %q", got)
	}
}
