package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRupiah renders a whole-rupiah amount the way id-ID displays IDR,
// e.g. 550000 -> "Rp 550.000".
func FormatRupiah(amount int64) string {
	return FormatCurrency(decimal.NewFromInt(amount))
}

// FormatCurrency rounds value to whole rupiah and groups thousands with dots.
func FormatCurrency(value decimal.Decimal) string {
	rounded := value.Round(0)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	intPart := rounded.StringFixed(0)

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	return sign + "Rp " + strings.Join(groups, ".")
}
