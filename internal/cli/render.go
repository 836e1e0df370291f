package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/avypatel/finsight/internal/model"
)

const chartBarWidth = 30

// RenderDashboard renders the financial snapshot: balance, the current
// month's cash flow, the savings goal and the trailing income/expense
// chart.
func RenderDashboard(uc model.UserContext) string {
	var b strings.Builder

	summary := fmt.Sprintf("%s Total Balance   %s\n", WalletIcon, BoldStyle.Render(model.FormatINR(uc.TotalBalance)))
	summary += fmt.Sprintf("   Monthly Income  %s\n", IncomeStyle.Render(model.FormatINR(uc.MonthlyIncome)))
	summary += fmt.Sprintf("   Monthly Spend   %s", ExpenseStyle.Render(model.FormatINR(uc.MonthlySpending)))
	b.WriteString(RenderBox("Dashboard", summary))
	b.WriteString("\n")

	if uc.SavingsGoal.Item != "" {
		b.WriteString(renderGoal(uc.SavingsGoal))
		b.WriteString("\n")
	}

	if len(uc.MonthlyStats) > 0 {
		b.WriteString(RenderBox(ChartIcon+" Cash Flow", RenderCashFlowChart(uc.MonthlyStats)))
		b.WriteString("\n")
	}

	if len(uc.Recent) > 0 {
		b.WriteString(RenderBox("Recent Transactions", RenderPassbook(uc.Recent)))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderCashFlowChart draws horizontal income/expense bars per month,
// scaled against the largest value in the window.
func RenderCashFlowChart(stats []model.MonthlyStat) string {
	maxVal := decimal.Zero
	for _, s := range stats {
		if s.Income.GreaterThan(maxVal) {
			maxVal = s.Income
		}
		if s.Expense.GreaterThan(maxVal) {
			maxVal = s.Expense
		}
	}
	if maxVal.IsZero() {
		return SubtleStyle.Render("No activity yet.")
	}

	var lines []string
	for _, s := range stats {
		lines = append(lines,
			fmt.Sprintf("%s %s %s", BoldStyle.Render(fmt.Sprintf("%-4s", s.Label)),
				IncomeStyle.Render(bar(s.Income, maxVal)), SubtleStyle.Render(model.FormatINR(s.Income))),
			fmt.Sprintf("     %s %s", ExpenseStyle.Render(bar(s.Expense, maxVal)),
				SubtleStyle.Render(model.FormatINR(s.Expense))),
		)
	}
	return strings.Join(lines, "\n")
}

func bar(value, maxVal decimal.Decimal) string {
	width := int(value.Div(maxVal).Mul(decimal.NewFromInt(chartBarWidth)).IntPart())
	if width == 0 && value.Sign() > 0 {
		width = 1
	}
	return strings.Repeat("█", width)
}

func renderGoal(goal model.SavingsGoal) string {
	pct := decimal.Zero
	if goal.Target.Sign() > 0 {
		pct = goal.Current.Div(goal.Target).Mul(decimal.NewFromInt(100)).Round(0)
	}
	content := fmt.Sprintf("%s  %s of %s (%s%%)",
		BoldStyle.Render(goal.Item),
		model.FormatINR(goal.Current),
		model.FormatINR(goal.Target),
		pct)
	return RenderBox(GoalIcon+" Savings Goal", content)
}

// RenderPassbook renders transactions as a table, most recent first.
func RenderPassbook(transactions []model.Transaction) string {
	if len(transactions) == 0 {
		return SubtleStyle.Render("No transactions recorded.")
	}

	header := TableHeaderStyle.Render(fmt.Sprintf("%-12s %-28s %-14s %12s", "Date", "Name", "Category", "Amount"))
	rows := []string{header}

	for _, t := range transactions {
		amount := model.FormatINR(t.Amount)
		switch t.Type {
		case model.TypeIncome:
			amount = IncomeStyle.Render("+" + amount)
		case model.TypeExpense:
			amount = ExpenseStyle.Render("-" + amount)
		default:
			amount = SubtleStyle.Render(amount)
		}

		name := t.Name
		if len(name) > 28 {
			name = name[:25] + "..."
		}
		category := t.Category
		if category == "" {
			category = "-"
		}

		rows = append(rows, fmt.Sprintf("%-12s %-28s %-14s %12s",
			t.Date.Format("2006-01-02"), name, category, amount))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
