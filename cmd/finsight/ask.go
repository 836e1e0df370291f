package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/avypatel/finsight/internal/gateway"
)

func askCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask the affordability advisor",
		Long: `Ask a free-form spending question. Queries carrying a price ("can I
afford a 50k bike?", "1.5L sofa") or a known keyword are answered locally
against your balance; anything else is escalated to the cloud model when
an API key is configured.

Examples:
  finsight ask "can I afford a 50k bike?"
  finsight ask should I buy an iphone
  finsight ask "is 2,00,000 too much for a trip?"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAsk,
	}

	cmd.Flags().Bool("no-input", false, "Never prompt for an API key")
	_ = viper.BindPFlag("advisor.no_input", cmd.Flags().Lookup("no-input"))

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	query := strings.Join(args, " ")

	if err := requireSession(); err != nil {
		return err
	}

	var provider gateway.Provider
	if viper.GetBool("advisor.no_input") {
		provider = gateway.DecliningProvider{}
	} else {
		provider = newTerminalProvider()
	}

	svc, err := newAdvisor(provider)
	if err != nil {
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

	fmt.Println(svc.Ask(ctx, query, userCtx))
	return nil
}
