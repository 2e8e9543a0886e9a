package utils

import (
	"strconv"
	"strings"
)

// FormatPrice renders a price with comma-separated thousands for
// display, e.g. 1234567 -> "1,234,567". Zero and negative prices
// render as "0".
func FormatPrice(price float64) string {
	if price <= 0 {
		return "0"
	}

	s := strconv.FormatFloat(price, 'f', -1, 64)

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return b.String() + fracPart
}
