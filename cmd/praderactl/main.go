package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/pradera/pradera/infrastructure/adapter/postgres"
	"github.com/pradera/pradera/infrastructure/config"
)

var databaseURL string

var rootCmd = &cobra.Command{
	Use:           "praderactl",
	Short:         "Administrative tasks for the Pradera site management API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "PostgreSQL DSN (defaults to DATABASE_URL)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "praderactl: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the server configuration, letting --database-url win over
// the environment.
func loadConfig() (*config.Config, error) {
	if databaseURL != "" {
		if err := os.Setenv("DATABASE_URL", databaseURL); err != nil {
			return nil, err
		}
	}
	return config.Load()
}

func openDB(ctx context.Context) (*config.Config, *sqlx.DB, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	db, err := postgres.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}
