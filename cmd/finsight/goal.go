package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/avypatel/finsight/internal/model"
)

func goalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage the savings goal",
	}
	cmd.AddCommand(goalSetCmd())
	cmd.AddCommand(goalShowCmd())
	return cmd
}

func goalSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set or update the savings goal",
		Long: `Set the single savings goal shown on the dashboard.

Example:
  finsight goal set --item "Royal Enfield Meteor" --target 250000 --saved 180000`,
		RunE: runGoalSet,
	}

	cmd.Flags().String("item", "", "What you are saving for (required)")
	cmd.Flags().String("target", "", "Target amount (required)")
	cmd.Flags().String("saved", "0", "Amount saved so far")
	_ = cmd.MarkFlagRequired("item")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func runGoalSet(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	if err := requireSession(); err != nil {
		return err
	}

	item, _ := cmd.Flags().GetString("item")
	targetStr, _ := cmd.Flags().GetString("target")
	savedStr, _ := cmd.Flags().GetString("saved")

	target, err := decimal.NewFromString(targetStr)
	if err != nil {
		return fmt.Errorf("invalid target %q: %w", targetStr, err)
	}
	if target.Sign() <= 0 {
		return fmt.Errorf("target must be positive")
	}
	saved, err := decimal.NewFromString(savedStr)
	if err != nil {
		return fmt.Errorf("invalid saved amount %q: %w", savedStr, err)
	}
	if saved.Sign() < 0 {
		return fmt.Errorf("saved amount cannot be negative")
	}

	db, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer closeStorage(db)

	goal := model.SavingsGoal{Item: item, Target: target, Current: saved}
	if err := db.SetSavingsGoal(ctx, goal); err != nil {
		return err
	}

	fmt.Printf("Goal set: %s, %s of %s saved.\n",
		goal.Item, model.FormatINR(goal.Current), model.FormatINR(goal.Target))
	return nil
}

func goalShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the savings goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			db, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer closeStorage(db)

			goal, err := db.GetSavingsGoal(ctx)
			if err != nil {
				return err
			}
			if goal == nil {
				fmt.Println("No savings goal set. Try 'finsight goal set'.")
				return nil
			}

			pct := decimal.Zero
			if goal.Target.Sign() > 0 {
				pct = goal.Current.Div(goal.Target).Mul(decimal.NewFromInt(100)).Round(0)
			}
			fmt.Printf("%s: %s of %s (%s%%)\n",
				goal.Item, model.FormatINR(goal.Current), model.FormatINR(goal.Target), pct)
			return nil
		},
	}
}
