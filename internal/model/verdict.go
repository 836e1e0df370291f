package model

// VerdictKind classifies the outcome of a local affordability evaluation.
type VerdictKind int

// Verdict kinds, in rough order of severity. Inconclusive means local
// analysis found neither a usable amount nor a known keyword.
const (
	VerdictInconclusive VerdictKind = iota
	VerdictCritical
	VerdictRisky
	VerdictSafe
	VerdictStandard
	VerdictLuxuryAlert
	VerdictFoodAlert
	VerdictInvestAlert
)

// Verdict is the result of one affordability evaluation: a classification
// plus its rendered, user-facing message. It has no identity beyond the
// query that produced it.
type Verdict struct {
	Message string
	Kind    VerdictKind
}

// Conclusive reports whether local analysis produced a displayable answer.
func (v Verdict) Conclusive() bool {
	return v.Kind != VerdictInconclusive
}

// String returns the kind's name for logging.
func (k VerdictKind) String() string {
	switch k {
	case VerdictCritical:
		return "critical"
	case VerdictRisky:
		return "risky"
	case VerdictSafe:
		return "safe"
	case VerdictStandard:
		return "standard"
	case VerdictLuxuryAlert:
		return "luxury_alert"
	case VerdictFoodAlert:
		return "food_alert"
	case VerdictInvestAlert:
		return "invest_alert"
	default:
		return "inconclusive"
	}
}
