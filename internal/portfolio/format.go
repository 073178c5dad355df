package portfolio

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency of every price on the dashboard.
const Currency = money.INR

var inr = money.GetCurrency(Currency)

// FormatMoney renders an amount as whole rupees with Indian digit grouping,
// e.g. "₹93,400" or "₹1,06,000". Symbol and template come from go-money.
func FormatMoney(d decimal.Decimal) string {
	r := d.Round(0)
	s := strings.Replace(inr.Template, "1", groupIndian(r.Abs().String(), inr.Thousand), 1)
	s = strings.Replace(s, "$", inr.Grapheme, 1)
	if r.IsNegative() {
		s = "-" + s
	}
	return s
}

// groupIndian separates the last three digits, then every two.
func groupIndian(digits, sep string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var b strings.Builder
	for i, c := range head {
		if i > 0 && (len(head)-i)%2 == 0 {
			b.WriteString(sep)
		}
		b.WriteRune(c)
	}
	return b.String() + sep + tail
}

// FormatGrams renders a quantity with at most two decimals, e.g. "10.5".
func FormatGrams(d decimal.Decimal) string {
	return d.Round(2).String()
}
