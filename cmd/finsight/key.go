package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avypatel/finsight/internal/cli"
)

func keyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the cloud advisor API key",
	}
	cmd.AddCommand(keySetCmd())
	cmd.AddCommand(keyResetCmd())
	cmd.AddCommand(keyStatusCmd())
	return cmd
}

func keySetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [key]",
		Short: "Store the Gemini API key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := newKeyStore()
			if err != nil {
				return err
			}

			var key string
			if len(args) == 1 {
				key = args[0]
			} else {
				prompter := cli.NewPrompter(nil, nil)
				key, err = prompter.Solicit(cmd.Context())
				if err != nil {
					return err
				}
			}
			if key == "" {
				return fmt.Errorf("no key supplied")
			}

			if err := store.Set(key); err != nil {
				return err
			}
			fmt.Println("API key stored.")
			return nil
		},
	}
}

func keyResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget the stored API key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := newKeyStore()
			if err != nil {
				return err
			}

			force, _ := cmd.Flags().GetBool("force")
			if !force {
				ok, err := cli.NewPrompter(nil, nil).Confirm(cmd.Context(), "Forget the stored API key?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println("Kept the stored key.")
					return nil
				}
			}

			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Println("API key cleared. The advisor will ask for one next time.")
			return nil
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
	return cmd
}

func keyStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether an API key is configured",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := newKeyStore()
			if err != nil {
				return err
			}
			key, err := store.Get()
			if err != nil {
				return err
			}
			if key == "" {
				fmt.Println("No API key configured. Local analysis only.")
				return nil
			}
			fmt.Println("API key configured.")
			return nil
		},
	}
}
