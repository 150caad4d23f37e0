package main

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v3"

	"livetv/internal/services"
	"livetv/internal/shared"
	"livetv/internal/storage"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var kv storage.KV
	if db, err := storage.Open(config.Database.Path); err == nil {
		kv = db
		defer db.Close()
	} else {
		logger.Warn("database unavailable, state will not persist", "path", config.Database.Path, "error", err)
		kv = storage.NewMemoryKV()
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		KV:     kv,
		Seed:   services.NewSeedClient(config.Seed, nil),
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "livetv",
		Usage:    "Manage and watch a directory of live YouTube & Facebook channels",
		Version:  "1.0.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
