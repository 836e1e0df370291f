// Package testutil provides shared helpers for tests that need a real
// database: temporary stores with migrations applied, and transaction
// fixtures for seeding them.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avypatel/finsight/internal/model"
	"github.com/avypatel/finsight/internal/storage"
)

// SetupTestDB creates a migrated SQLite store in a temp directory and
// registers its cleanup.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	db, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// TransactionBuilder builds transaction fixtures with sensible defaults.
type TransactionBuilder struct {
	tx model.Transaction
}

// NewTransaction starts a fixture: an expense of the given amount, dated
// today, on a fixed test account.
func NewTransaction(name string, amount int64) *TransactionBuilder {
	return &TransactionBuilder{tx: model.Transaction{
		Date:      time.Now().UTC().Truncate(24 * time.Hour),
		Name:      name,
		Type:      model.TypeExpense,
		AccountID: "test-account",
		Amount:    decimal.NewFromInt(amount),
	}}
}

// AsIncome marks the fixture as income.
func (b *TransactionBuilder) AsIncome() *TransactionBuilder {
	b.tx.Type = model.TypeIncome
	return b
}

// On sets the transaction date, keeping the fixture deterministic when a
// test needs specific months.
func (b *TransactionBuilder) On(date time.Time) *TransactionBuilder {
	b.tx.Date = date
	return b
}

// InCategory sets the category.
func (b *TransactionBuilder) InCategory(category string) *TransactionBuilder {
	b.tx.Category = category
	return b
}

// Build finalizes the fixture, filling in the dedup hash.
func (b *TransactionBuilder) Build() model.Transaction {
	tx := b.tx
	tx.Hash = tx.GenerateHash()
	return tx
}

// Seed saves the given transactions, failing the test on error or when a
// fixture is silently dropped as a duplicate.
func Seed(t *testing.T, db *storage.SQLiteStorage, transactions ...model.Transaction) {
	t.Helper()

	saved, err := db.SaveTransactions(context.Background(), transactions)
	if err != nil {
		t.Fatalf("failed to seed transactions: %v", err)
	}
	if saved != len(transactions) {
		t.Fatalf("seeded %d of %d transactions, duplicate fixtures?", saved, len(transactions))
	}
}
