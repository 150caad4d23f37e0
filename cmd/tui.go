package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"livetv/internal/shared"
	"livetv/internal/ui"
)

// TUI launches the interactive channel viewer. Logs are redirected to a
// file so they do not corrupt the alternate screen.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	logger, err := shared.NewFileLogger("tmp/tui.log")
	if err == nil {
		r.SetLogger(logger)
	}

	if err := r.load(ctx); err != nil {
		return err
	}

	model := ui.NewModel(ui.Opts{
		Channels:  r.store.List(),
		ShareBase: fmt.Sprintf("http://%s/watch", r.config.Server.Addr()),
		SelectID:  int(cmd.Int("channel")),
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run viewer: %w", err)
	}

	return nil
}
