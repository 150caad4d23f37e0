package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "livetv.db" {
			t.Errorf("expected database path livetv.db, got %s", config.Database.Path)
		}

		if config.Server.Host != "127.0.0.1" {
			t.Errorf("expected server host 127.0.0.1, got %s", config.Server.Host)
		}

		if config.Server.Port != 8080 {
			t.Errorf("expected server port 8080, got %d", config.Server.Port)
		}

		if config.Server.RateLimit <= 0 || config.Server.RateBurst <= 0 {
			t.Errorf("expected positive rate limit defaults, got %v/%d", config.Server.RateLimit, config.Server.RateBurst)
		}

		if config.Seed.URL != "" || config.Seed.Path != "" {
			t.Errorf("expected empty seed source by default, got %+v", config.Seed)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		if err := CreateConfigFile(configPath); err == nil {
			t.Error("creating config file again should fail")
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[database]
path = "/custom/path.db"
max_open_conns = 4
max_idle_conns = 2

[server]
host = "0.0.0.0"
port = 9090
rate_limit = 5.0
rate_burst = 10

[seed]
url = "https://example.com/channels.json"
path = "./seed.json"
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.Database.Path != "/custom/path.db" {
			t.Errorf("expected database path /custom/path.db, got %s", config.Database.Path)
		}

		if config.Server.Port != 9090 {
			t.Errorf("expected server port 9090, got %d", config.Server.Port)
		}

		if config.Seed.URL != "https://example.com/channels.json" {
			t.Errorf("expected seed url, got %s", config.Seed.URL)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
			t.Error("loading a missing config should fail")
		}
	})

	t.Run("Addr", func(t *testing.T) {
		cfg := ServerConfig{Host: "127.0.0.1", Port: 8080}
		if got := cfg.Addr(); got != "127.0.0.1:8080" {
			t.Errorf("Addr() = %s, want 127.0.0.1:8080", got)
		}
	})
}
