// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// setupCommand handles setup operations for configuration and the database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Create a config.toml from the embedded template",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupConfig,
			},
			{
				Name:   "database",
				Usage:  "Initialize the database and run migrations",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupDatabase,
			},
		},
	}
}

// channelCommand handles channel CRUD operations
func channelCommand(r *Runner) *cli.Command {
	fieldFlags := []cli.Flag{
		&cli.StringFlag{Name: "name", Usage: "Channel display name"},
		&cli.StringFlag{Name: "url", Usage: "Source URL (YouTube or Facebook)"},
		&cli.StringFlag{Name: "type", Usage: "Channel type (youtube or facebook)"},
		&cli.StringFlag{Name: "category", Usage: "Category tag (music, news, ...)"},
		&cli.StringFlag{Name: "description", Usage: "Optional description"},
		&cli.StringFlag{Name: "status", Usage: "Channel status (active or inactive)"},
	}

	return &cli.Command{
		Name:    "channel",
		Aliases: []string{"ch"},
		Usage:   "Manage directory channels",
		Commands: []*cli.Command{
			{
				Name:   "add",
				Usage:  "Add a new channel",
				Flags:  fieldFlags,
				Action: r.ChannelAdd,
			},
			{
				Name:  "list",
				Usage: "List channels, optionally filtered",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "search", Usage: "Free-text search on name and description"},
					&cli.StringFlag{Name: "category", Usage: "Category facet (or 'all')", Value: "all"},
					&cli.StringFlag{Name: "type", Usage: "Type facet (or 'all')", Value: "all"},
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
					&cli.BoolFlag{Name: "pretty", Usage: "Pretty-print output", Value: true},
					&cli.BoolFlag{Name: "csv", Usage: "Output CSV"},
					&cli.BoolFlag{Name: "markdown", Usage: "Output Markdown"},
				},
				Action: r.ChannelList,
			},
			{
				Name:  "show",
				Usage: "Show a single channel with its embed and share URLs",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
				},
				Action: r.ChannelShow,
			},
			{
				Name:  "update",
				Usage: "Update fields of an existing channel",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  fieldFlags,
				Action: r.ChannelUpdate,
			},
			{
				Name:  "delete",
				Usage: "Delete a channel",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.ChannelDelete,
			},
		},
	}
}

// exportCommand writes the portable backup document.
func exportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export all channels to a JSON document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (defaults to channels-backup-{date}.json)",
			},
			&cli.BoolFlag{Name: "stdout", Usage: "Write the document to stdout instead of a file"},
		},
		Action: r.Export,
	}
}

// importCommand ingests an external document, replacing the directory.
func importCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Import channels from a JSON document (replaces current channels)",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "path"},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Confirm replacement without prompting",
			},
		},
		Action: r.Import,
	}
}

// backupCommand handles local snapshots and the backup history.
func backupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "backup",
		Usage: "Local backup operations",
		Commands: []*cli.Command{
			{
				Name:   "create",
				Usage:  "Create a local snapshot in the database",
				Action: r.BackupCreate,
			},
			{
				Name:  "history",
				Usage: "Show the import/export history",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
				},
				Action: r.BackupHistory,
			},
		},
	}
}

// activityCommand shows the recent operator activity.
func activityCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "activity",
		Usage: "Show recent activity",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "limit", Usage: "Number of entries to show", Value: 5},
			&cli.BoolFlag{Name: "json", Usage: "Output raw JSON"},
		},
		Action: r.Activity,
	}
}

// statsCommand summarizes the directory.
func statsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "stats",
		Usage:  "Show channel statistics",
		Action: r.Stats,
	}
}

// clearCommand wipes channels and derived logs.
func clearCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "clear",
		Usage: "Clear ALL channels and history (irreversible)",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Confirm without prompting",
			},
		},
		Action: r.Clear,
	}
}

// serveCommand runs the HTTP viewer/admin API.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the directory's HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "host", Usage: "Host to bind (overrides config)"},
			&cli.IntFlag{Name: "port", Usage: "Port to bind (overrides config)"},
		},
		Action: r.Serve,
	}
}

// tuiCommand returns the top-level TUI command for the interactive viewer.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive channel viewer",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "channel",
				Usage: "Auto-select a channel by id (share link semantics)",
			},
		},
		Action: r.TUI,
	}
}
