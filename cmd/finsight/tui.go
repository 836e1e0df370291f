package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avypatel/finsight/internal/gateway"
	"github.com/avypatel/finsight/internal/storage"
	"github.com/avypatel/finsight/internal/tui"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if err := requireSession(); err != nil {
		return err
	}

	db, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer closeStorage(db)

	userCtx, err := db.BuildUserContext(ctx, viper.GetInt("dashboard.months"))
	if err != nil {
		return fmt.Errorf("failed to build financial snapshot: %w", err)
	}

	transactions, err := db.ListTransactions(ctx, storage.ListOptions{})
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}

	// The TUI cannot prompt on stdin mid-frame, so escalation without a
	// stored key terminates with the missing-key message.
	svc, err := newAdvisor(gateway.DecliningProvider{})
	if err != nil {
		return err
	}

	program := tea.NewProgram(tui.New(svc, userCtx, transactions), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard crashed: %w", err)
	}
	return nil
}
