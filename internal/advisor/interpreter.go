// Package advisor implements the affordability advisor: a query
// interpreter that extracts a monetary amount from free text, a threshold
// decision engine, and the orchestration that escalates inconclusive
// queries to a cloud model.
package advisor

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// An extractor recognises one monetary notation. Extractors are tried in
// declaration order and the first match wins; a suffix notation therefore
// pre-empts a plain number even when both would match the same text.
type extractor struct {
	pattern    *regexp.Regexp
	multiplier decimal.Decimal
}

var extractors = []extractor{
	// 50k, 2.5 k -> thousands
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*k`), decimal.NewFromInt(1000)},
	// 1.5l, 3 l -> lakhs
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*l`), decimal.NewFromInt(100000)},
	// 50,000 or 50000, optional fraction
	{regexp.MustCompile(`(\d+(?:,\d{3})*(?:\.\d+)?)`), decimal.NewFromInt(1)},
}

// Interpret extracts a monetary amount from a free-text query. The second
// return value is false when no positive amount was found; a matched zero
// counts as not found. Interpret is pure: the same query always yields the
// same result.
func Interpret(query string) (decimal.Decimal, bool) {
	q := strings.ToLower(query)

	for _, ex := range extractors {
		m := ex.pattern.FindStringSubmatch(q)
		if m == nil {
			continue
		}
		raw := strings.ReplaceAll(m[1], ",", "")
		n, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Zero, false
		}
		amount := n.Mul(ex.multiplier)
		if amount.Sign() <= 0 {
			// First pattern class wins even when it yields zero.
			return decimal.Zero, false
		}
		return amount, true
	}

	return decimal.Zero, false
}
