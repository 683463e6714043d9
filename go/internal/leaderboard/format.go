package leaderboard

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatWager renders an amount as US dollars with grouping and two decimals,
// e.g. "$1,234.50". Only the whole part goes through the grouping printer;
// the cents come from the exact decimal string.
func FormatWager(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	cents := fixed[strings.IndexByte(fixed, '.')+1:]
	whole := amount.Round(2).Truncate(0).IntPart()

	p := message.NewPrinter(language.English)
	return sign + "$" + p.Sprintf("%v", number.Decimal(whole)) + "." + cents
}

// FormatPrize renders a prize amount, e.g. "$100"
func FormatPrize(amount decimal.Decimal) string {
	return "$" + amount.String()
}
