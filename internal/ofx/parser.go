// Package ofx imports bank and credit card statements in OFX/QFX format.
// This is the passbook's "automatic" entry mode: statements downloaded
// from a bank are parsed into transactions and deduplicated on insert.
package ofx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"

	"github.com/avypatel/finsight/internal/model"
)

// Parser implements OFX/QFX file parsing.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	tagFixRegex   = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocess fixes common formatting issues in real-world OFX files:
// leading whitespace before the header, mixed-case SEVERITY values, and
// SGML-style opening tags missing their closing bracket.
func (p *Parser) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	content = tagFixRegex.ReplaceAllString(content, "$1>")
	return content
}

// ParseFile parses an OFX/QFX statement and returns transactions.
func (p *Parser) ParseFile(_ context.Context, reader io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var transactions []model.Transaction
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			if stmt.BankTranList == nil {
				continue
			}
			accountID := string(stmt.BankAcctFrom.AcctID)
			for _, ofxTx := range stmt.BankTranList.Transactions {
				transactions = append(transactions, p.convert(ofxTx, accountID))
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			if stmt.BankTranList == nil {
				continue
			}
			accountID := string(stmt.CCAcctFrom.AcctID)
			for _, ofxTx := range stmt.BankTranList.Transactions {
				transactions = append(transactions, p.convert(ofxTx, accountID))
			}
		}
	}

	slog.Info("Parsed OFX file",
		"total_transactions", len(transactions),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return transactions, nil
}

// convert maps an OFX transaction to the domain model. OFX signs amounts
// (negative for debits); the model keeps non-negative amounts and carries
// the direction in Type.
func (p *Parser) convert(ofxTx ofxgo.Transaction, accountID string) model.Transaction {
	rat := &ofxTx.TrnAmt.Rat
	amount := decimal.NewFromBigRat(rat, 2)

	txType := model.TypeExpense
	if amount.Sign() > 0 {
		txType = model.TypeIncome
	}

	tx := model.Transaction{
		ID:        string(ofxTx.FiTID),
		Date:      ofxTx.DtPosted.Time,
		Name:      string(ofxTx.Name),
		Merchant:  p.extractMerchant(ofxTx),
		Amount:    amount.Abs(),
		AccountID: accountID,
		Type:      txType,
		Category:  inferCategory(ofxTx.TrnType.String()),
	}
	tx.Hash = tx.GenerateHash()
	return tx
}

// inferCategory guesses a category from the OFX transaction type. OFX
// carries no real category data, so only the unambiguous types map.
func inferCategory(trnType string) string {
	switch trnType {
	case "INT":
		return "Interest"
	case "FEE":
		return "Bank Fees"
	case "ATM":
		return "Cash & ATM"
	default:
		return ""
	}
}

// extractMerchant tries to get a clean merchant name from OFX data.
func (p *Parser) extractMerchant(tx ofxgo.Transaction) string {
	if tx.Payee != nil && tx.Payee.Name != "" {
		return string(tx.Payee.Name)
	}

	name := string(tx.Name)
	if tx.Memo != "" && isGenericDescription(name) {
		name = string(tx.Memo)
	}
	name = strings.TrimSpace(name)

	prefixes := []string{
		"POS PURCHASE ",
		"PURCHASE AUTHORIZED ON ",
		"DEBIT CARD PURCHASE ",
		"ACH DEBIT ",
		"UPI/",
		"IMPS/",
		"NEFT/",
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(strings.ToUpper(name), prefix) {
			name = name[len(prefix):]
			break
		}
	}

	// Strip leading "MM/DD " date stamps some banks prepend
	if len(name) > 5 && name[2] == '/' && name[5] == ' ' {
		name = strings.TrimSpace(name[6:])
	}

	return name
}

// isGenericDescription checks if a transaction name is too generic to be
// a merchant.
func isGenericDescription(name string) bool {
	switch strings.ToUpper(name) {
	case "DEBIT", "CREDIT", "PURCHASE", "PAYMENT", "POS TRANSACTION", "CARD PURCHASE":
		return true
	}
	return false
}
