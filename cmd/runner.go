package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"livetv/internal/services"
	"livetv/internal/shared"
	"livetv/internal/storage"
	"livetv/internal/store"
	"livetv/internal/tasks"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	kv     storage.KV
	store  *store.ChannelStore
	engine *tasks.BackupEngine
	logger *log.Logger
	output io.Writer
	loaded bool
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	KV     storage.KV
	Seed   store.SeedSource
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.KV == nil {
		opts.KV = storage.NewMemoryKV()
	}
	if opts.Seed == nil {
		opts.Seed = services.NewSeedClient(opts.Config.Seed, nil)
	}

	channelStore := store.NewChannelStore(store.Opts{
		KV:     opts.KV,
		Logger: opts.Logger,
		Seed:   opts.Seed,
	})
	engine := tasks.NewBackupEngine(channelStore, opts.KV, opts.Logger)

	return &Runner{
		config: opts.Config,
		kv:     opts.KV,
		store:  channelStore,
		engine: engine,
		logger: opts.Logger,
		output: opts.Output,
	}
}

// SetLogger swaps the runner's logger (used by the TUI to redirect logs to a file).
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, channelCommand, exportCommand, importCommand, backupCommand, activityCommand, statsCommand, clearCommand, serveCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// load resolves the channel collection once per process.
func (r *Runner) load(ctx context.Context) error {
	if r.loaded {
		return nil
	}
	if err := r.store.Load(ctx); err != nil {
		return fmt.Errorf("failed to load channels: %w", err)
	}
	r.loaded = true
	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return err
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
