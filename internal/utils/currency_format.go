package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL formats an amount in Brazilian real, e.g. 1234.5 -> "R$ 1.234,50"
// and -500 -> "R$ -500,00". Thousands are separated with dots and the
// decimal mark is a comma, matching the pt-BR locale the UI and WhatsApp
// messages use.
func FormatBRL(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2) // e.g. "-500.00"

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var b strings.Builder
	b.WriteString("R$ ")
	if negative {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}
