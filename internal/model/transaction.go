// Package model defines the core domain types shared across the application.
package model

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types. Transfers move money between the user's own accounts
// and are excluded from balance arithmetic.
const (
	TypeIncome   = "income"
	TypeExpense  = "expense"
	TypeTransfer = "transfer"
)

// Transaction represents a single financial transaction from any source.
type Transaction struct {
	Date      time.Time
	CreatedAt time.Time
	ID        string
	Name      string // Raw transaction description
	Merchant  string // Cleaned merchant name
	Category  string
	Type      string // income, expense or transfer
	AccountID string
	Hash      string
	Amount    decimal.Decimal // Always non-negative; Type carries the sign
}

// Signed returns the amount with its balance sign applied: income adds,
// expense subtracts, anything else contributes zero.
func (t *Transaction) Signed() decimal.Decimal {
	switch t.Type {
	case TypeIncome:
		return t.Amount
	case TypeExpense:
		return t.Amount.Neg()
	default:
		return decimal.Zero
	}
}

// GenerateHash creates a unique hash for duplicate detection.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%s:%s:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount.String(),
		t.Type,
		t.Name,
		t.AccountID)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
