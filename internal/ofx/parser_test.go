package ofx

import (
	"context"
	"strings"
	"testing"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avypatel/finsight/internal/model"
)

const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20260815120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>INR
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>SAVINGS
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20260801120000[0:GMT]
<DTEND>20260831120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260810120000[0:GMT]
<TRNAMT>-450.00
<FITID>2026081001
<NAME>UPI/ZOMATO ORDER
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20260801120000[0:GMT]
<TRNAMT>85000.00
<FITID>2026080101
<NAME>SALARY CREDIT
</STMTTRN>
<STMTTRN>
<TRNTYPE>FEE
<DTPOSTED>20260805120000[0:GMT]
<TRNAMT>-25.00
<FITID>2026080501
<NAME>SMS ALERT CHARGES
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1245000.00
<DTASOF>20260831120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

const sampleCreditCardOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20260815120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<CREDITCARDMSGSRSV1>
<CCSTMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<CCSTMTRS>
<CURDEF>INR
<CCACCTFROM>
<ACCTID>4111111111111111
</CCACCTFROM>
<BANKTRANLIST>
<DTSTART>20260801120000[0:GMT]
<DTEND>20260831120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260812120000[0:GMT]
<TRNAMT>-1240.00
<FITID>2026081201
<NAME>AMAZON RETAIL
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>-1240.00
<DTASOF>20260831120000[0:GMT]
</LEDGERBAL>
</CCSTMTRS>
</CCSTMTTRNRS>
</CREDITCARDMSGSRSV1>
</OFX>`

func TestParseFileBankStatement(t *testing.T) {
	parser := NewParser()

	transactions, err := parser.ParseFile(context.Background(), strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, transactions, 3)

	byID := make(map[string]model.Transaction, len(transactions))
	for _, tx := range transactions {
		assert.Equal(t, "1234567890", tx.AccountID)
		assert.NotEmpty(t, tx.Hash)
		assert.True(t, tx.Amount.Sign() >= 0, "amounts are stored unsigned")
		byID[tx.ID] = tx
	}

	zomato := byID["2026081001"]
	assert.Equal(t, model.TypeExpense, zomato.Type)
	assert.True(t, zomato.Amount.Equal(decimal.NewFromInt(450)))
	assert.Equal(t, "ZOMATO ORDER", zomato.Merchant, "UPI prefix is stripped")
	assert.Equal(t, 2026, zomato.Date.Year())

	salary := byID["2026080101"]
	assert.Equal(t, model.TypeIncome, salary.Type)
	assert.True(t, salary.Amount.Equal(decimal.NewFromInt(85000)))

	fee := byID["2026080501"]
	assert.Equal(t, "Bank Fees", fee.Category)
}

func TestParseFileCreditCardStatement(t *testing.T) {
	parser := NewParser()

	transactions, err := parser.ParseFile(context.Background(), strings.NewReader(sampleCreditCardOFX))
	require.NoError(t, err)
	require.Len(t, transactions, 1)

	tx := transactions[0]
	assert.Equal(t, "4111111111111111", tx.AccountID)
	assert.Equal(t, model.TypeExpense, tx.Type)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(1240)))
}

func TestParseFileInvalidData(t *testing.T) {
	parser := NewParser()

	_, err := parser.ParseFile(context.Background(), strings.NewReader("this is not an OFX file"))
	assert.Error(t, err)
}

func TestPreprocessLeadingWhitespace(t *testing.T) {
	parser := NewParser()

	padded := "\n\n  " + sampleBankOFX
	transactions, err := parser.ParseFile(context.Background(), strings.NewReader(padded))
	require.NoError(t, err)
	assert.Len(t, transactions, 3)
}

func TestPreprocessSeverityCase(t *testing.T) {
	parser := NewParser()

	mixed := strings.ReplaceAll(sampleBankOFX, "<SEVERITY>INFO", "<SEVERITY>Info")
	transactions, err := parser.ParseFile(context.Background(), strings.NewReader(mixed))
	require.NoError(t, err)
	assert.Len(t, transactions, 3)
}

func TestExtractMerchantPrefixes(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"upi prefix", "UPI/SWIGGY BANGALORE", "SWIGGY BANGALORE"},
		{"imps prefix", "IMPS/RENT TRANSFER", "RENT TRANSFER"},
		{"pos prefix", "POS PURCHASE BIG BAZAAR", "BIG BAZAAR"},
		{"no prefix", "Reliance Fresh", "Reliance Fresh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := ofxgo.Transaction{Name: ofxgo.String(tt.input)}
			assert.Equal(t, tt.expected, parser.extractMerchant(tx))
		})
	}
}

func TestInferCategory(t *testing.T) {
	assert.Equal(t, "Interest", inferCategory("INT"))
	assert.Equal(t, "Cash & ATM", inferCategory("ATM"))
	assert.Equal(t, "", inferCategory("DEBIT"))
}
