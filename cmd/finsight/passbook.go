package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avypatel/finsight/internal/cli"
	"github.com/avypatel/finsight/internal/model"
	"github.com/avypatel/finsight/internal/storage"
)

func passbookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passbook",
		Short: "List transactions, most recent first",
		Long: `List stored transactions ordered by date, newest first. Entries from
the same day keep their insertion order, latest on top.

Examples:
  finsight passbook                  # everything
  finsight passbook --type expense   # expenses only
  finsight passbook --limit 20       # most recent 20`,
		RunE: runPassbook,
	}

	cmd.Flags().StringP("type", "t", "", "Filter by type (income, expense, transfer)")
	cmd.Flags().IntP("limit", "n", 0, "Maximum entries to show (0 = all)")

	return cmd
}

func runPassbook(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if err := requireSession(); err != nil {
		return err
	}

	txType, _ := cmd.Flags().GetString("type")
	limit, _ := cmd.Flags().GetInt("limit")

	switch txType {
	case "", model.TypeIncome, model.TypeExpense, model.TypeTransfer:
	default:
		return fmt.Errorf("unknown transaction type %q", txType)
	}

	db, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer closeStorage(db)

	transactions, err := db.ListTransactions(ctx, storage.ListOptions{Type: txType, Limit: limit})
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}

	fmt.Println(cli.FormatTitle("Passbook"))
	fmt.Println(cli.RenderPassbook(transactions))
	return nil
}
