package helpers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{name: "pads one decimal", amount: decimal.NewFromFloat(149.9), want: "$149.90"},
		{name: "pads whole number", amount: decimal.NewFromInt(149), want: "$149.00"},
		{name: "keeps two decimals", amount: decimal.RequireFromString("149.99"), want: "$149.99"},
		{name: "rounds extra precision", amount: decimal.RequireFromString("19.999"), want: "$20.00"},
		{name: "zero", amount: decimal.Zero, want: "$0.00"},
		{name: "thousands separator", amount: decimal.NewFromInt(1299), want: "$1,299.00"},
		{name: "millions", amount: decimal.RequireFromString("1234567.5"), want: "$1,234,567.50"},
		{name: "negative", amount: decimal.NewFromInt(-12), want: "-$12.00"},
		{name: "negative rounding to zero", amount: decimal.RequireFromString("-0.001"), want: "$0.00"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Price(tc.amount))
		})
	}
}

func TestPriceIsStableOnFormattedAmounts(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"149.90", "149.00", "0.05", "75.00"} {
		first := Price(decimal.RequireFromString(raw))
		again := Price(decimal.RequireFromString(first[1:]))
		require.Equal(t, first, again)
	}
}

func TestPluralize(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1 Color", Pluralize("Color", 1))
	require.Equal(t, "2 Colors", Pluralize("Color", 2))
	require.Equal(t, "0 Colors", Pluralize("Color", 0))
	require.Equal(t, "12 Colors", Pluralize("Color", 12))
}
