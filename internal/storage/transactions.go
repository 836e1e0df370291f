package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avypatel/finsight/internal/model"
)

// SaveTransactions stores transactions, skipping any whose hash is already
// present. It returns the number actually inserted.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) (int, error) {
	if len(transactions) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions (id, hash, date, name, merchant, category, type, account_id, amount)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	inserted := 0
	for i := range transactions {
		t := &transactions[i]
		if t.Hash == "" {
			t.Hash = t.GenerateHash()
		}
		if t.ID == "" {
			t.ID = t.Hash[:16]
		}
		if t.Type == "" {
			t.Type = model.TypeExpense
		}

		res, err := stmt.ExecContext(ctx,
			t.ID, t.Hash, t.Date, t.Name, t.Merchant, t.Category, t.Type, t.AccountID, t.Amount.String())
		if err != nil {
			return 0, fmt.Errorf("failed to insert transaction %q: %w", t.Name, err)
		}
		n, err := res.RowsAffected()
		if err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return inserted, nil
}

// ListOptions filters and bounds a passbook listing.
type ListOptions struct {
	Type  string // empty = all types
	Limit int    // 0 = no limit
}

// ListTransactions returns transactions ordered by date descending, then
// creation time descending.
func (s *SQLiteStorage) ListTransactions(ctx context.Context, opts ListOptions) ([]model.Transaction, error) {
	query := `
		SELECT id, hash, date, name, COALESCE(merchant, ''), COALESCE(category, ''), type, COALESCE(account_id, ''), amount, created_at
		FROM transactions`
	args := []any{}
	if opts.Type != "" {
		query += ` WHERE type = ?`
		args = append(args, opts.Type)
	}
	query += ` ORDER BY date DESC, created_at DESC`
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

// GetTransactionCount returns the total number of stored transactions.
func (s *SQLiteStorage) GetTransactionCount(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

func scanTransactions(rows *sql.Rows) ([]model.Transaction, error) {
	var transactions []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var amount string
		var date, createdAt time.Time

		if err := rows.Scan(&t.ID, &t.Hash, &date, &t.Name, &t.Merchant, &t.Category, &t.Type, &t.AccountID, &amount, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		parsed, err := decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount %q for transaction %s: %w", amount, t.ID, err)
		}
		t.Amount = parsed
		t.Date = date
		t.CreatedAt = createdAt
		transactions = append(transactions, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}
