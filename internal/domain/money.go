package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL форматирует сумму в сентаво как "R$ 1.234,56".
func FormatBRL(cents int64) string {
	d := decimal.New(cents, -2)

	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	whole, frac, _ := strings.Cut(d.StringFixed(2), ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	return sign + "R$ " + b.String() + "," + frac
}
