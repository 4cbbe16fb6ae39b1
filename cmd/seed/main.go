// Command seed drops and recreates the schema, then loads the fixture data.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/emilythestrangee/board-game-reviews/backend/internal/config"
	"github.com/emilythestrangee/board-game-reviews/backend/internal/database"
	"github.com/emilythestrangee/board-game-reviews/backend/internal/logger"
)

var (
	configPath string
	dbURL      string
	schemaOnly bool
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Rebuild the review database",
	Long: `Drop every table, recreate the schema and load the fixture data set
(4 categories, 4 users, 13 reviews, 6 comments).

Examples:
  seed                                   # use config.yml and the environment
  seed --db postgres://localhost/nc_games
  seed --schema-only                     # empty tables only`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Path to YAML config file")
	rootCmd.Flags().StringVar(&dbURL, "db", "", "Database connection URL (overrides config)")
	rootCmd.Flags().BoolVar(&schemaOnly, "schema-only", false, "Recreate the tables without loading data")
}

func run(ctx context.Context) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if dbURL != "" {
		cfg.Database.URL = dbURL
	}

	zlog, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer zlog.Sync()

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	db, err := database.NewDatabase(ctx, cfg.Database.DSN(), zlog)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Reset(ctx); err != nil {
		return err
	}
	if schemaOnly {
		return nil
	}
	return db.Seed(ctx, database.TestData)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
