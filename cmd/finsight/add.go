package main

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/avypatel/finsight/internal/model"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction manually",
		Long: `Record a single transaction by hand, the passbook's manual entry mode.

Examples:
  finsight add --type expense --name "Netflix India" --amount 649 --category Entertainment
  finsight add --type income --name "Rahul (Rent Share)" --amount 8500
  finsight add --type transfer --name "To savings account" --amount 10000`,
		RunE: runAdd,
	}

	cmd.Flags().StringP("type", "t", model.TypeExpense, "Transaction type (income, expense, transfer)")
	cmd.Flags().StringP("name", "m", "", "Transaction description (required)")
	cmd.Flags().StringP("amount", "a", "", "Amount, e.g. 649 or 1250.50 (required)")
	cmd.Flags().StringP("category", "c", "", "Category label")
	cmd.Flags().StringP("date", "d", "", "Date as 2006-01-02 (default: today)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if err := requireSession(); err != nil {
		return err
	}

	txType, _ := cmd.Flags().GetString("type")
	name, _ := cmd.Flags().GetString("name")
	amountStr, _ := cmd.Flags().GetString("amount")
	category, _ := cmd.Flags().GetString("category")
	dateStr, _ := cmd.Flags().GetString("date")

	switch txType {
	case model.TypeIncome, model.TypeExpense, model.TypeTransfer:
	default:
		return fmt.Errorf("unknown transaction type %q", txType)
	}

	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amountStr, err)
	}
	if amount.Sign() <= 0 {
		return fmt.Errorf("amount must be positive")
	}

	date := time.Now()
	if dateStr != "" {
		date, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			return fmt.Errorf("invalid date %q: %w", dateStr, err)
		}
	}

	db, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer closeStorage(db)

	tx := model.Transaction{
		Date:     date,
		Name:     name,
		Category: category,
		Type:     txType,
		Amount:   amount,
	}

	inserted, err := db.SaveTransactions(ctx, []model.Transaction{tx})
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	if inserted == 0 {
		fmt.Println("Already recorded (duplicate).")
		return nil
	}

	fmt.Printf("Recorded %s of %s.\n", txType, model.FormatINR(amount))
	return nil
}
