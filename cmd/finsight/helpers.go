package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/avypatel/finsight/internal/advisor"
	"github.com/avypatel/finsight/internal/auth"
	"github.com/avypatel/finsight/internal/cli"
	"github.com/avypatel/finsight/internal/common"
	"github.com/avypatel/finsight/internal/config"
	"github.com/avypatel/finsight/internal/gateway"
	"github.com/avypatel/finsight/internal/storage"
)

// openStorage opens the transaction database and brings the schema up to
// date.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}
	dbPath = config.ExpandPath(dbPath)

	db, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

func closeStorage(db *storage.SQLiteStorage) {
	if err := db.Close(); err != nil {
		slog.Error("Failed to close database", "error", err)
	}
}

// newKeyStore returns the credential store for the inference API key.
func newKeyStore() (*gateway.FileStore, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return gateway.NewFileStore(filepath.Join(dir, "gemini_api_key"))
}

// newSessionStore returns the persisted auth session store.
func newSessionStore() (*auth.SessionStore, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return auth.NewSessionStore(filepath.Join(dir, "session.json"))
}

// newAuthClient builds the auth provider client from configuration.
func newAuthClient() (*auth.Client, error) {
	return auth.NewClient(auth.Config{
		BaseURL: viper.GetString("auth.url"),
		AnonKey: viper.GetString("auth.anon_key"),
	})
}

// requireSession enforces sign-in when an auth provider is configured.
// Without a configured provider finsight runs standalone and the check is
// skipped.
func requireSession() error {
	if viper.GetString("auth.url") == "" {
		return nil
	}
	store, err := newSessionStore()
	if err != nil {
		return err
	}
	session, err := store.Load()
	if err != nil {
		return err
	}
	if session == nil {
		return common.NewUserError("Not signed in. Run 'finsight auth login' first", common.ErrNoSession)
	}
	return nil
}

// newAdvisor wires the advisor service: interpreter and engine locally,
// Gemini behind the credential store for escalation.
func newAdvisor(provider gateway.Provider) (*advisor.Service, error) {
	keys, err := newKeyStore()
	if err != nil {
		return nil, err
	}

	client := gateway.NewClient(gateway.Config{
		BaseURL: viper.GetString("gemini.base_url"),
		Model:   viper.GetString("gemini.model"),
		Timeout: viper.GetDuration("gemini.timeout"),
	})

	return advisor.NewService(gateway.New(client, keys, provider), keys), nil
}

// newTerminalProvider prompts for a credential on the controlling
// terminal.
func newTerminalProvider() gateway.Provider {
	return cli.NewPrompter(nil, nil)
}
