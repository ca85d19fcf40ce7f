package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRupiah formats a whole-rupiah amount for report output, with dot
// thousand separators in the Indonesian convention.
// Example: 5000000 returns "Rp 5.000.000".
func FormatRupiah(amount int64) string {
	digits := decimal.NewFromInt(amount).Abs().String()

	var b strings.Builder
	if amount < 0 {
		b.WriteString("-")
	}
	b.WriteString("Rp ")
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteRune('.')
		}
		b.WriteRune(r)
	}
	return b.String()
}
