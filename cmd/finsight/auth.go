package main

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avypatel/finsight/internal/cli"
	"github.com/avypatel/finsight/internal/common"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Sign in and out of the account provider",
	}
	cmd.AddCommand(authLoginCmd())
	cmd.AddCommand(authLogoutCmd())
	cmd.AddCommand(authStatusCmd())
	return cmd
}

func authLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE:  runAuthLogin,
	}
	cmd.Flags().StringP("email", "e", "", "Account email")
	return cmd
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	client, err := newAuthClient()
	if err != nil {
		if errors.Is(err, common.ErrMissingConfig) {
			return common.NewUserError("No auth provider configured. Set auth.url and auth.anon_key in your config", err)
		}
		return err
	}

	email, _ := cmd.Flags().GetString("email")
	prompter := cli.NewPrompter(nil, nil)
	if email == "" {
		email, err = prompter.ReadLine(ctx, "Email")
		if err != nil {
			return err
		}
	}
	if email == "" {
		return fmt.Errorf("email is required")
	}

	fmt.Print(cli.FormatPrompt("Password"))
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	session, err := client.SignIn(ctx, email, string(passwordBytes))
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			return common.NewUserError("Sign-in failed: wrong email or password", err)
		}
		return fmt.Errorf("sign-in failed: %w", err)
	}

	store, err := newSessionStore()
	if err != nil {
		return err
	}
	if err := store.Save(session); err != nil {
		return err
	}

	fmt.Printf("Signed in as %s.\n", session.Email)
	return nil
}

func authLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the local session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := newSessionStore()
			if err != nil {
				return err
			}
			session, err := store.Load()
			if err != nil {
				return err
			}
			if session == nil {
				fmt.Println("Not signed in.")
				return nil
			}

			// Best effort provider-side sign-out; the local session is
			// cleared regardless.
			if client, clientErr := newAuthClient(); clientErr == nil {
				if signOutErr := client.SignOut(cmd.Context(), session.AccessToken); signOutErr != nil {
					fmt.Fprintln(os.Stderr, cli.FormatWarning("Provider sign-out failed; local session cleared anyway"))
				}
			}

			if err := store.Clear(); err != nil {
				return err
			}
			fmt.Println("Signed out.")
			return nil
		},
	}
}

func authStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current session",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := newSessionStore()
			if err != nil {
				return err
			}
			session, err := store.Load()
			if err != nil {
				return err
			}
			if session == nil {
				fmt.Println("Not signed in.")
				return nil
			}
			fmt.Printf("Signed in as %s.\n", session.Email)
			return nil
		},
	}
}
