package model

import "github.com/shopspring/decimal"

// SavingsGoal tracks progress toward a single named purchase target.
type SavingsGoal struct {
	Item    string
	Target  decimal.Decimal
	Current decimal.Decimal
}

// MonthlyStat is one month of aggregated cash flow for the dashboard chart.
type MonthlyStat struct {
	Label   string // e.g. "Apr"
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// UserContext is the read-only financial snapshot the advisor evaluates
// against. It is derived from the transaction store and never mutated by
// the advisor.
type UserContext struct {
	TotalBalance    decimal.Decimal
	MonthlyIncome   decimal.Decimal
	MonthlySpending decimal.Decimal
	SavingsGoal     SavingsGoal
	Recent          []Transaction
	MonthlyStats    []MonthlyStat
}
