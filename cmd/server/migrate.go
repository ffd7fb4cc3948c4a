package main

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sams408/safeon-id-vault/config"
	"github.com/sams408/safeon-id-vault/pkg/db"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE:  migrate,
}

func migrate(cmd *cobra.Command, args []string) error {
	logger := setupLogger("info", "json")
	cfg := config.LoadConfig(logger)
	logger = setupLogger(cfg.LogLevel, cfg.LogFormat)

	u, err := url.Parse(cfg.DatabaseURL)
	if err != nil || (u.Scheme != "postgres" && u.Scheme != "postgresql") {
		return fmt.Errorf("migrate needs a postgres DATABASE_URL")
	}

	ctx := context.Background()
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	applied, err := db.Migrate(ctx, database, logger)
	if err != nil {
		return err
	}
	logger.Infof("Applied %d migrations", applied)
	return nil
}
