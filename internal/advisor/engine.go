package advisor

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/avypatel/finsight/internal/model"
)

// Ratio bands for the numeric tier. The shared boundaries fall through:
// exactly half the balance is Risky, exactly a fifth is Standard.
var (
	ratioCritical = decimal.RequireFromString("0.5")
	ratioRisky    = decimal.RequireFromString("0.2")
	ratioSafe     = decimal.RequireFromString("0.05")
)

// keywordRule maps query keywords to a canned verdict when no amount is
// available. Rules are checked in declaration order.
type keywordRule struct {
	render func(ctx model.UserContext) string
	words  []string
	kind   model.VerdictKind
}

var keywordRules = []keywordRule{
	{
		kind:  model.VerdictLuxuryAlert,
		words: []string{"iphone", "apple"},
		render: func(_ model.UserContext) string {
			return "🍎 **Luxury Alert**: iPhones are depreciating assets. Do you *really* need it?"
		},
	},
	{
		kind:  model.VerdictFoodAlert,
		words: []string{"party", "dinner"},
		render: func(ctx model.UserContext) string {
			return fmt.Sprintf("🍔 **Foodie Alert**: You spend %s monthly. Maybe cook at home?",
				model.FormatINR(ctx.MonthlySpending))
		},
	},
	{
		kind:  model.VerdictInvestAlert,
		words: []string{"invest", "sip"},
		render: func(_ model.UserContext) string {
			return "📈 **Yes!** Always a good time to invest. Check the Budget tab."
		},
	},
}

// Evaluate classifies a spending query against the user's finances. The
// numeric tier runs whenever a positive amount was parsed and strictly
// pre-empts keyword matching; a query like "50k iphone" is judged by the
// number, never the brand. With no amount and no keyword the verdict is
// inconclusive and the caller is expected to escalate.
func Evaluate(query string, amount decimal.Decimal, found bool, ctx model.UserContext) model.Verdict {
	if found && amount.Sign() > 0 {
		return evaluateAmount(amount, ctx)
	}

	lower := strings.ToLower(query)
	for _, rule := range keywordRules {
		for _, word := range rule.words {
			if strings.Contains(lower, word) {
				return model.Verdict{Kind: rule.kind, Message: rule.render(ctx)}
			}
		}
	}

	return model.Verdict{Kind: model.VerdictInconclusive}
}

func evaluateAmount(amount decimal.Decimal, ctx model.UserContext) model.Verdict {
	if ctx.TotalBalance.Sign() <= 0 {
		// Any spend against an empty balance is critical.
		return model.Verdict{
			Kind: model.VerdictCritical,
			Message: fmt.Sprintf("🚫 **Critical Risk**: This costs %s and you have no balance to cover it. Absolutely not.",
				model.FormatINR(amount)),
		}
	}

	ratio := amount.Div(ctx.TotalBalance)
	percent := ratio.Mul(decimal.NewFromInt(100)).Round(0)

	switch {
	case ratio.GreaterThan(ratioCritical):
		return model.Verdict{
			Kind: model.VerdictCritical,
			Message: fmt.Sprintf("🚫 **Critical Risk**: This costs %s, which is %s%% of your total balance! Absolutely not.",
				model.FormatINR(amount), percent),
		}
	case ratio.GreaterThan(ratioRisky):
		return model.Verdict{
			Kind: model.VerdictRisky,
			Message: fmt.Sprintf("⚠️ **Risky**: This is a heavy purchase (%s). Only buy if urgent.",
				model.FormatINR(amount)),
		}
	case ratio.LessThan(ratioSafe):
		return model.Verdict{
			Kind: model.VerdictSafe,
			Message: fmt.Sprintf("✅ **Safe**: This is tiny (%s). Go for it!",
				model.FormatINR(amount)),
		}
	default:
		return model.Verdict{
			Kind:    model.VerdictStandard,
			Message: "ℹ️ **Standard Purchase**: It's affordable, but check your budget first.",
		}
	}
}
