package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/avypatel/finsight/internal/model"
	"github.com/avypatel/finsight/internal/ofx"
)

const importBatchSize = 50

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.ofx> [file.qfx ...]",
		Short: "Import bank statements (OFX/QFX)",
		Long: `Import downloaded bank or credit card statements into the passbook.
Already-imported transactions are skipped by content hash, so re-running
an import is safe.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if err := requireSession(); err != nil {
		return err
	}

	db, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer closeStorage(db)

	parser := ofx.NewParser()

	var all []model.Transaction
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		transactions, parseErr := parser.ParseFile(ctx, f)
		_ = f.Close()
		if parseErr != nil {
			return fmt.Errorf("failed to parse %s: %w", path, parseErr)
		}
		all = append(all, transactions...)
	}

	if len(all) == 0 {
		fmt.Println("No transactions found in the given files.")
		return nil
	}

	bar := progressbar.NewOptions(len(all),
		progressbar.OptionSetDescription("Importing"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	inserted := 0
	for start := 0; start < len(all); start += importBatchSize {
		end := start + importBatchSize
		if end > len(all) {
			end = len(all)
		}
		n, err := db.SaveTransactions(ctx, all[start:end])
		if err != nil {
			return fmt.Errorf("failed to save transactions: %w", err)
		}
		inserted += n
		_ = bar.Add(end - start)
	}
	_ = bar.Finish()

	fmt.Printf("Imported %d new transactions (%d duplicates skipped).\n",
		inserted, len(all)-inserted)
	return nil
}
