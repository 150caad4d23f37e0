package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"livetv/internal/shared"
)

const seedDocument = `[
	{"id": 1, "name": "Lofi Girl", "url": "https://www.youtube.com/watch?v=jfKfPfyJRdk", "type": "youtube", "category": "music"},
	{"id": 2, "name": "NASA Live", "url": "https://www.youtube.com/watch?v=21X5lGlDOfg", "type": "youtube", "category": "science"}
]`

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	return path
}

func TestSeedClient(t *testing.T) {
	t.Run("fetches from url", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(seedDocument))
		}))
		defer server.Close()

		client := NewSeedClient(shared.SeedConfig{URL: server.URL}, server.Client())
		channels, err := client.Channels(context.Background())
		if err != nil {
			t.Fatalf("Channels() error = %v", err)
		}
		if len(channels) != 2 || channels[0].Name != "Lofi Girl" {
			t.Errorf("Channels() = %+v, want the fetched seed", channels)
		}
	})

	t.Run("falls back to file when url fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		path := writeSeedFile(t, seedDocument)
		client := NewSeedClient(shared.SeedConfig{URL: server.URL, Path: path}, server.Client())

		channels, err := client.Channels(context.Background())
		if err != nil {
			t.Fatalf("Channels() error = %v", err)
		}
		if len(channels) != 2 {
			t.Errorf("len(Channels()) = %d, want 2 from the file fallback", len(channels))
		}
	})

	t.Run("url failure without a file is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewSeedClient(shared.SeedConfig{URL: server.URL}, server.Client())
		if _, err := client.Channels(context.Background()); err == nil {
			t.Error("Channels() error = nil, want a fetch error")
		}
	})

	t.Run("reads from file", func(t *testing.T) {
		path := writeSeedFile(t, seedDocument)
		client := NewSeedClient(shared.SeedConfig{Path: path}, nil)

		channels, err := client.Channels(context.Background())
		if err != nil {
			t.Fatalf("Channels() error = %v", err)
		}
		if len(channels) != 2 {
			t.Errorf("len(Channels()) = %d, want 2", len(channels))
		}
	})

	t.Run("malformed document", func(t *testing.T) {
		path := writeSeedFile(t, `{"not": "an array"}`)
		client := NewSeedClient(shared.SeedConfig{Path: path}, nil)

		if _, err := client.Channels(context.Background()); !errors.Is(err, shared.ErrFormat) {
			t.Errorf("Channels() error = %v, want ErrFormat", err)
		}
	})

	t.Run("no source configured", func(t *testing.T) {
		client := NewSeedClient(shared.SeedConfig{}, nil)
		if _, err := client.Channels(context.Background()); err == nil {
			t.Error("Channels() error = nil, want an error")
		}
	})
}
