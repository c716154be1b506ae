// Package ngn renders Naira amounts. Amounts are whole-naira at this
// precision; rendering rounds to the nearest naira and groups thousands.
package ngn

import "github.com/shopspring/decimal"

// Symbol is the Naira currency symbol used across all rendered output.
const Symbol = "₦"

// Format renders an amount as a currency-prefixed, thousands-separated
// string, e.g. ₦1,525,000.
func Format(amount decimal.Decimal) string {
	return Symbol + GroupThousands(amount)
}

// GroupThousands renders a whole-naira amount with comma separators and
// no currency symbol.
func GroupThousands(amount decimal.Decimal) string {
	s := amount.Round(0).String()
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
