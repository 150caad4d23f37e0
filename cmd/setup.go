package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"livetv/internal/shared"
)

// SetupConfig writes a config.toml from the embedded template.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if err := shared.CreateConfigFile(path); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	r.logger.Info("config file created", "path", path)
	r.writePlainln("✓ Wrote %s, edit it to taste", path)
	return nil
}

// SetupDatabase opens the configured database and applies migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	config, err := shared.LoadConfig(cmd.String("config"))
	if err != nil {
		r.logger.Warn("config not found, using defaults", "error", err)
		config = shared.DefaultConfig()
	}

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database)

	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	r.logger.Info("database ready", "path", config.Database.Path)
	r.writePlainln("✓ Database initialized at %s", config.Database.Path)
	return nil
}
