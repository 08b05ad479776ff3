package helpers

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Price formats a USD amount with a dollar sign and exactly two decimals.
// Example: Price(decimal.NewFromFloat(149.9)) => "$149.90"
func Price(amount decimal.Decimal) string {
	rounded := amount.Round(2)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	whole, frac, _ := strings.Cut(rounded.StringFixed(2), ".")
	return sign + "$" + thousandSep(whole) + "." + frac
}

// Pluralize renders "<count> <noun>" and appends "s" unless count is exactly one.
func Pluralize(noun string, count int) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, noun)
	}
	return fmt.Sprintf("%d %ss", count, noun)
}

func thousandSep(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
