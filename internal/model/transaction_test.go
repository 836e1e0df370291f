package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSigned(t *testing.T) {
	amount := decimal.NewFromInt(450)

	income := Transaction{Type: TypeIncome, Amount: amount}
	assert.True(t, income.Signed().Equal(amount))

	expense := Transaction{Type: TypeExpense, Amount: amount}
	assert.True(t, expense.Signed().Equal(amount.Neg()))

	transfer := Transaction{Type: TypeTransfer, Amount: amount}
	assert.True(t, transfer.Signed().IsZero(), "transfers do not move the balance")
}

func TestGenerateHash(t *testing.T) {
	date := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	tx := Transaction{
		Date:   date,
		Name:   "Zomato",
		Type:   TypeExpense,
		Amount: decimal.NewFromInt(450),
	}

	first := tx.GenerateHash()
	second := tx.GenerateHash()
	assert.Equal(t, first, second, "hashing is deterministic")

	other := tx
	other.Amount = decimal.NewFromInt(451)
	assert.NotEqual(t, first, other.GenerateHash())

	sameDayIncome := tx
	sameDayIncome.Type = TypeIncome
	assert.NotEqual(t, first, sameDayIncome.GenerateHash(), "type participates in identity")
}
