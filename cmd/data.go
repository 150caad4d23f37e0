package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"livetv/internal/formatter"
	"livetv/internal/query"
	"livetv/internal/shared"
	"livetv/internal/tasks"
)

// Export serializes the directory to a portable JSON document.
func (r *Runner) Export(ctx context.Context, cmd *cli.Command) error {
	if err := r.load(ctx); err != nil {
		return err
	}

	document, err := r.engine.Export()
	if err != nil {
		return err
	}

	if cmd.Bool("stdout") {
		return r.writePlain("%s\n", document)
	}

	path := cmd.String("output")
	if path == "" {
		path = tasks.ExportFilename(time.Now())
	}

	if err := os.WriteFile(path, document, 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", shared.ErrPersistence, path, err)
	}

	r.logger.Info("channels exported", "path", path, "count", len(r.store.List()))
	r.writePlainln("✓ Exported %d channels to %s", len(r.store.List()), path)
	return nil
}

// Import reads a document from disk and replaces the directory with it.
func (r *Runner) Import(ctx context.Context, cmd *cli.Command) error {
	if err := r.load(ctx); err != nil {
		return err
	}

	path := cmd.StringArg("path")
	if path == "" {
		return fmt.Errorf("%w: import document path", shared.ErrMissingArgument)
	}

	document, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	result, err := tasks.ParseImport(document)
	if err != nil {
		return err
	}

	r.writePlainln("Import will REPLACE all %d current channels with %d from %s (%d entries rejected).",
		len(r.store.List()), len(result.Accepted), path, result.RejectedCount)

	if !cmd.Bool("yes") {
		if !confirm(r, "Proceed?") {
			r.writePlainln("Aborted, nothing changed.")
			return nil
		}
	}

	if err := r.engine.ImportReplace(result); err != nil {
		return err
	}

	r.logger.Info("channels imported", "path", path, "accepted", len(result.Accepted), "rejected", result.RejectedCount)
	r.writePlainln("✓ Imported %d channels", len(result.Accepted))
	return nil
}

// BackupCreate stores a snapshot of the current directory in the database.
func (r *Runner) BackupCreate(ctx context.Context, cmd *cli.Command) error {
	if err := r.load(ctx); err != nil {
		return err
	}

	snapshot, err := r.engine.Snapshot()
	if err != nil {
		return err
	}

	r.logger.Info("snapshot created", "channels", len(snapshot.Channels))
	r.writePlainln("✓ Snapshot of %d channels saved", len(snapshot.Channels))
	return nil
}

// BackupHistory prints the recorded import/export events.
func (r *Runner) BackupHistory(ctx context.Context, cmd *cli.Command) error {
	if err := r.load(ctx); err != nil {
		return err
	}

	records := r.store.Activity().BackupHistory()
	if cmd.Bool("json") {
		return r.writeJSON(records, true)
	}

	return r.writePlain("%s", formatter.FormatBackupHistory(records))
}

// Activity prints the most recent operator activity entries.
func (r *Runner) Activity(ctx context.Context, cmd *cli.Command) error {
	if err := r.load(ctx); err != nil {
		return err
	}

	records := r.store.Activity().Recent(int(cmd.Int("limit")))
	if cmd.Bool("json") {
		return r.writeJSON(records, true)
	}

	return r.writePlain("%s", formatter.FormatActivity(records))
}

// Stats prints directory totals and the category breakdown.
func (r *Runner) Stats(ctx context.Context, cmd *cli.Command) error {
	if err := r.load(ctx); err != nil {
		return err
	}

	stats := query.Summarize(r.store.List())
	r.writePlain("Channels:   %d\n", stats.Total)
	r.writePlain("YouTube:    %d\n", stats.YouTube)
	r.writePlain("Facebook:   %d\n", stats.Facebook)
	r.writePlain("Categories: %d\n", stats.Categories)
	return nil
}

// Clear wipes all channels and the activity history.
func (r *Runner) Clear(ctx context.Context, cmd *cli.Command) error {
	if err := r.load(ctx); err != nil {
		return err
	}

	count := len(r.store.List())
	if !cmd.Bool("yes") {
		r.writePlainln("This removes ALL %d channels and the activity history.", count)
		if !confirm(r, "Are you sure?") {
			r.writePlainln("Aborted, nothing changed.")
			return nil
		}
	}

	if err := r.store.Clear(); err != nil {
		return err
	}

	r.logger.Info("directory cleared", "removed", count)
	r.writePlainln("✓ Removed %d channels", count)
	return nil
}

// confirm asks a yes/no question on stdin.
func confirm(r *Runner, prompt string) bool {
	r.writePlain("%s [y/N] ", prompt)

	var answer string
	if _, err := fmt.Scanln(&answer); err != nil {
		return false
	}
	return answer == "y" || answer == "Y" || answer == "yes"
}
