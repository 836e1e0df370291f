package cli

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/avypatel/finsight/internal/model"
)

func sampleContext() model.UserContext {
	return model.UserContext{
		TotalBalance:    decimal.NewFromInt(1245000),
		MonthlyIncome:   decimal.NewFromInt(85000),
		MonthlySpending: decimal.NewFromInt(45200),
		SavingsGoal: model.SavingsGoal{
			Item:    "Royal Enfield Meteor",
			Target:  decimal.NewFromInt(250000),
			Current: decimal.NewFromInt(180000),
		},
		MonthlyStats: []model.MonthlyStat{
			{Label: "Jul", Income: decimal.NewFromInt(80000), Expense: decimal.NewFromInt(38000)},
			{Label: "Aug", Income: decimal.NewFromInt(85000), Expense: decimal.NewFromInt(45200)},
		},
		Recent: []model.Transaction{
			{
				Date:   time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
				Name:   "Zomato",
				Type:   model.TypeExpense,
				Amount: decimal.NewFromInt(450),
			},
		},
	}
}

func TestRenderDashboard(t *testing.T) {
	out := RenderDashboard(sampleContext())

	assert.Contains(t, out, "₹12,45,000")
	assert.Contains(t, out, "₹85,000")
	assert.Contains(t, out, "Royal Enfield Meteor")
	assert.Contains(t, out, "Zomato")
}

func TestRenderCashFlowChart(t *testing.T) {
	stats := sampleContext().MonthlyStats
	out := RenderCashFlowChart(stats)

	assert.Contains(t, out, "Jul")
	assert.Contains(t, out, "Aug")
	assert.Contains(t, out, "█")
}

func TestRenderCashFlowChartEmpty(t *testing.T) {
	out := RenderCashFlowChart([]model.MonthlyStat{{Label: "Aug"}})
	assert.Contains(t, out, "No activity yet.")
}

func TestRenderPassbook(t *testing.T) {
	transactions := []model.Transaction{
		{
			Date:   time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			Name:   "Salary",
			Type:   model.TypeIncome,
			Amount: decimal.NewFromInt(85000),
		},
		{
			Date:     time.Date(2026, 8, 19, 0, 0, 0, 0, time.UTC),
			Name:     "A very long transaction description that should be truncated",
			Type:     model.TypeExpense,
			Category: "Groceries",
			Amount:   decimal.NewFromInt(1240),
		},
	}

	out := RenderPassbook(transactions)

	assert.Contains(t, out, "2026-08-20")
	assert.Contains(t, out, "Salary")
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "...", "long names are truncated")
	assert.NotContains(t, out, "should be truncated")
}

func TestRenderPassbookEmpty(t *testing.T) {
	out := RenderPassbook(nil)
	assert.Contains(t, out, "No transactions recorded.")
}
