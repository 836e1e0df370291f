package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avypatel/finsight/internal/cli"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show balance, cash flow and savings goal",
		RunE:  runDashboard,
	}

	cmd.Flags().Int("months", 6, "Months of cash flow history to chart")
	_ = viper.BindPFlag("dashboard.months", cmd.Flags().Lookup("months"))

	return cmd
}

func runDashboard(cmd *cobra.Command, _ []string) error {
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

	fmt.Println(cli.RenderDashboard(userCtx))
	return nil
}
