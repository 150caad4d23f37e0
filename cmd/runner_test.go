package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"livetv/internal/models"
	"livetv/internal/shared"
	"livetv/internal/storage"
	th "livetv/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			kv := storage.NewMemoryKV()

			runner := NewRunner(RunnerOpts{
				Config: config,
				KV:     kv,
				Seed:   &th.StaticSeed{},
				Logger: logger,
				Output: output,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.kv != kv {
				t.Error("expected kv to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.store == nil || runner.engine == nil {
				t.Error("expected store and engine to be constructed")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil kv uses the in-memory store", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if _, ok := runner.kv.(*storage.MemoryKV); !ok {
				t.Errorf("expected an in-memory kv, got %T", runner.kv)
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"key": "value"}, true); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"key": "value"}, false); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if got, want := output.String(), `{"key":"value"}`+"\n"; got != want {
				t.Errorf("expected %q, got %q", want, got)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &th.FWriter{}})

			err := runner.writeJSON(map[string]string{"key": "value"}, false)
			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writePlain("hello %s", "world"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.String() != "hello world" {
			t.Errorf("expected hello world, got %q", output.String())
		}
	})
}

// newTestApp wires a runner over in-memory state into a cli app, the way main
// does against sqlite.
func newTestApp(channels []models.Channel) (*cli.Command, *Runner, *bytes.Buffer) {
	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		KV:     storage.NewMemoryKV(),
		Seed:   &th.StaticSeed{Seed: channels},
		Output: output,
	})
	app := &cli.Command{Name: "livetv", Commands: runner.register()}
	return app, runner, output
}

func TestCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("channel add then list", func(t *testing.T) {
		app, runner, output := newTestApp([]models.Channel{th.Channel(1, "Seeded")})

		args := []string{"livetv", "channel", "add",
			"--name", "Lofi Girl",
			"--url", "https://www.youtube.com/watch?v=jfKfPfyJRdk",
			"--type", "youtube",
			"--category", "music",
		}
		if err := app.Run(ctx, args); err != nil {
			t.Fatalf("channel add error = %v", err)
		}
		if !strings.Contains(output.String(), "Added channel #2") {
			t.Errorf("add output = %q, want the created id", output.String())
		}

		output.Reset()
		if err := app.Run(ctx, []string{"livetv", "channel", "list"}); err != nil {
			t.Fatalf("channel list error = %v", err)
		}
		if !strings.Contains(output.String(), "Lofi Girl") || !strings.Contains(output.String(), "Seeded") {
			t.Errorf("list output = %q, want both channels", output.String())
		}
		if got := len(runner.store.List()); got != 2 {
			t.Errorf("len(List()) = %d, want 2", got)
		}
	})

	t.Run("channel add rejects a bad url", func(t *testing.T) {
		app, _, _ := newTestApp(nil)

		args := []string{"livetv", "channel", "add",
			"--name", "Bad",
			"--url", "https://vimeo.com/1",
			"--type", "youtube",
			"--category", "misc",
		}
		if err := app.Run(ctx, args); err == nil {
			t.Error("channel add error = nil, want a validation error")
		}
	})

	t.Run("channel delete", func(t *testing.T) {
		app, runner, _ := newTestApp([]models.Channel{th.Channel(1, "One"), th.Channel(2, "Two")})

		if err := app.Run(ctx, []string{"livetv", "channel", "delete", "1"}); err != nil {
			t.Fatalf("channel delete error = %v", err)
		}
		if got := len(runner.store.List()); got != 1 {
			t.Errorf("len(List()) = %d, want 1", got)
		}
	})

	t.Run("channel show unknown id", func(t *testing.T) {
		app, _, _ := newTestApp([]models.Channel{th.Channel(1, "One")})

		err := app.Run(ctx, []string{"livetv", "channel", "show", "42"})
		if err == nil {
			t.Error("channel show error = nil, want not found")
		}
	})

	t.Run("stats", func(t *testing.T) {
		app, _, output := newTestApp([]models.Channel{th.Channel(1, "One"), th.Channel(2, "Two")})

		if err := app.Run(ctx, []string{"livetv", "stats"}); err != nil {
			t.Fatalf("stats error = %v", err)
		}
		if !strings.Contains(output.String(), "Channels:   2") {
			t.Errorf("stats output = %q, want the total", output.String())
		}
	})

	t.Run("clear with --yes", func(t *testing.T) {
		app, runner, _ := newTestApp([]models.Channel{th.Channel(1, "One")})

		if err := app.Run(ctx, []string{"livetv", "clear", "--yes"}); err != nil {
			t.Fatalf("clear error = %v", err)
		}
		if got := len(runner.store.List()); got != 0 {
			t.Errorf("len(List()) = %d, want 0", got)
		}
	})

	t.Run("export then import round trip", func(t *testing.T) {
		app, runner, _ := newTestApp([]models.Channel{th.Channel(1, "One"), th.Channel(2, "Two")})

		path := filepath.Join(t.TempDir(), "channels.json")
		if err := app.Run(ctx, []string{"livetv", "export", "--output", path}); err != nil {
			t.Fatalf("export error = %v", err)
		}
		th.AssertFileExists(t, path)
		if !strings.Contains(th.MustReadFile(t, path), `"name": "One"`) {
			t.Error("exported document is missing the first channel")
		}

		if err := app.Run(ctx, []string{"livetv", "channel", "delete", "1"}); err != nil {
			t.Fatalf("channel delete error = %v", err)
		}

		if err := app.Run(ctx, []string{"livetv", "import", "--yes", path}); err != nil {
			t.Fatalf("import error = %v", err)
		}
		if got := len(runner.store.List()); got != 2 {
			t.Errorf("len(List()) after round trip = %d, want 2", got)
		}
	})

	t.Run("activity after mutations", func(t *testing.T) {
		app, _, output := newTestApp([]models.Channel{th.Channel(1, "One")})

		if err := app.Run(ctx, []string{"livetv", "channel", "delete", "1"}); err != nil {
			t.Fatalf("channel delete error = %v", err)
		}

		output.Reset()
		if err := app.Run(ctx, []string{"livetv", "activity"}); err != nil {
			t.Fatalf("activity error = %v", err)
		}
		if !strings.Contains(output.String(), "Channel Deleted") {
			t.Errorf("activity output = %q, want the delete entry", output.String())
		}
	})
}
