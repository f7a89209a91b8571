package finmetrics

import (
	"strconv"
	"strings"
)

var currencyReplacer = strings.NewReplacer("$", "", "€", "", "£", "", ",", "", " ", "", "\t", "")

// parseAmount normalizes a detected token to a float: currency symbols and
// thousands separators are stripped, a parenthesized value is negative.
// Locale-independent by construction - only ASCII digits and '.' survive.
func parseAmount(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = currencyReplacer.Replace(s)
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		n = -n
	}
	return n, true
}
