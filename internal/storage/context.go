package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avypatel/finsight/internal/model"
)

// recentCount is how many transactions the dashboard shows.
const recentCount = 5

// BuildUserContext derives the advisor's financial snapshot from the row
// store: total balance from summing signed amounts, the current month's
// income and spending, a trailing monthly series for the chart, the
// savings goal and the most recent transactions.
func (s *SQLiteStorage) BuildUserContext(ctx context.Context, months int) (model.UserContext, error) {
	var uc model.UserContext

	balance, err := s.Balance(ctx)
	if err != nil {
		return uc, err
	}
	uc.TotalBalance = balance

	stats, err := s.MonthlyStats(ctx, months)
	if err != nil {
		return uc, err
	}
	uc.MonthlyStats = stats
	if len(stats) > 0 {
		latest := stats[len(stats)-1]
		uc.MonthlyIncome = latest.Income
		uc.MonthlySpending = latest.Expense
	}

	goal, err := s.GetSavingsGoal(ctx)
	if err != nil {
		return uc, err
	}
	if goal != nil {
		uc.SavingsGoal = *goal
	}

	recent, err := s.ListTransactions(ctx, ListOptions{Limit: recentCount})
	if err != nil {
		return uc, err
	}
	uc.Recent = recent

	return uc, nil
}

// Balance sums signed amounts over all transactions: income adds, expense
// subtracts, transfers and anything else are ignored.
func (s *SQLiteStorage) Balance(ctx context.Context) (decimal.Decimal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT type, amount FROM transactions WHERE type IN (?, ?)`,
		model.TypeIncome, model.TypeExpense)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to query balance: %w", err)
	}
	defer func() { _ = rows.Close() }()

	total := decimal.Zero
	for rows.Next() {
		var txType, amount string
		if err := rows.Scan(&txType, &amount); err != nil {
			return decimal.Zero, fmt.Errorf("failed to scan balance row: %w", err)
		}
		parsed, err := decimal.NewFromString(amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("corrupt amount %q: %w", amount, err)
		}
		if txType == model.TypeIncome {
			total = total.Add(parsed)
		} else {
			total = total.Sub(parsed)
		}
	}
	if err := rows.Err(); err != nil {
		return decimal.Zero, fmt.Errorf("failed to iterate balance rows: %w", err)
	}
	return total, nil
}

// MonthlyStats aggregates income and expense per calendar month for the
// trailing window, oldest first. Months with no activity still appear so
// the chart has a continuous axis.
func (s *SQLiteStorage) MonthlyStats(ctx context.Context, months int) ([]model.MonthlyStat, error) {
	if months <= 0 {
		months = 6
	}

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)

	rows, err := s.db.QueryContext(ctx, `
		SELECT strftime('%Y-%m', date), type, amount
		FROM transactions
		WHERE type IN (?, ?) AND date >= ?`,
		model.TypeIncome, model.TypeExpense, start)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly stats: %w", err)
	}
	defer func() { _ = rows.Close() }()

	type bucket struct {
		income  decimal.Decimal
		expense decimal.Decimal
	}
	buckets := make(map[string]*bucket, months)

	for rows.Next() {
		var ym, txType, amount string
		if err := rows.Scan(&ym, &txType, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan monthly row: %w", err)
		}
		parsed, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount %q: %w", amount, err)
		}
		b, ok := buckets[ym]
		if !ok {
			b = &bucket{}
			buckets[ym] = b
		}
		if txType == model.TypeIncome {
			b.income = b.income.Add(parsed)
		} else {
			b.expense = b.expense.Add(parsed)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate monthly rows: %w", err)
	}

	stats := make([]model.MonthlyStat, 0, months)
	for i := 0; i < months; i++ {
		month := start.AddDate(0, i, 0)
		stat := model.MonthlyStat{Label: month.Format("Jan")}
		if b, ok := buckets[month.Format("2006-01")]; ok {
			stat.Income = b.income
			stat.Expense = b.expense
		}
		stats = append(stats, stat)
	}
	return stats, nil
}

// GetSavingsGoal returns the configured savings goal, or nil when none is
// set.
func (s *SQLiteStorage) GetSavingsGoal(ctx context.Context) (*model.SavingsGoal, error) {
	var item, target, current string
	err := s.db.QueryRowContext(ctx,
		`SELECT item, target, current FROM savings_goal WHERE id = 1`).
		Scan(&item, &target, &current)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read savings goal: %w", err)
	}

	targetD, err := decimal.NewFromString(target)
	if err != nil {
		return nil, fmt.Errorf("corrupt goal target %q: %w", target, err)
	}
	currentD, err := decimal.NewFromString(current)
	if err != nil {
		return nil, fmt.Errorf("corrupt goal progress %q: %w", current, err)
	}

	return &model.SavingsGoal{Item: item, Target: targetD, Current: currentD}, nil
}

// SetSavingsGoal stores the single savings goal, replacing any previous
// one.
func (s *SQLiteStorage) SetSavingsGoal(ctx context.Context, goal model.SavingsGoal) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO savings_goal (id, item, target, current, updated_at)
		VALUES (1, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			item = excluded.item,
			target = excluded.target,
			current = excluded.current,
			updated_at = CURRENT_TIMESTAMP`,
		goal.Item, goal.Target.String(), goal.Current.String())
	if err != nil {
		return fmt.Errorf("failed to store savings goal: %w", err)
	}
	return nil
}
