package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatINR renders an amount with Indian digit grouping: the last three
// integer digits form one group, the rest group in pairs (12,45,000).
// Fractions are rounded to two places and shown only when non-zero.
func FormatINR(d decimal.Decimal) string {
	neg := d.Sign() < 0

	fixed := d.Abs().Round(2).StringFixed(2)
	parts := strings.SplitN(fixed, ".", 2)
	digits, frac := parts[0], parts[1]

	var groups []string
	if len(digits) > 3 {
		head := digits[:len(digits)-3]
		groups = append(groups, digits[len(digits)-3:])
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
	} else {
		groups = []string{digits}
	}

	out := strings.Join(groups, ",")
	if frac != "00" {
		out += "." + frac
	}
	if neg {
		return "-₹" + out
	}
	return "₹" + out
}
