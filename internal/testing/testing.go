// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"os"
	"testing"

	"livetv/internal/models"
)

// FailingKV is a test double for storage.KV that fails selected operations.
//
// The zero value behaves like an empty in-memory store; set FailSet,
// FailGet or FailDelete to inject persistence failures.
type FailingKV struct {
	Data       map[string]string
	FailGet    bool
	FailSet    bool
	FailDelete bool
	// FailSetAfter fails Set calls once SetCalls exceeds it; zero means
	// every call when FailSet is set.
	FailSetAfter int
	SetCalls     int
}

func (f *FailingKV) init() {
	if f.Data == nil {
		f.Data = map[string]string{}
	}
}

func (f *FailingKV) Get(key string) (string, bool, error) {
	f.init()
	if f.FailGet {
		return "", false, errors.New("get failed")
	}
	value, ok := f.Data[key]
	return value, ok, nil
}

func (f *FailingKV) Set(key, value string) error {
	f.init()
	f.SetCalls++
	if f.FailSet && f.SetCalls > f.FailSetAfter {
		return errors.New("set failed")
	}
	f.Data[key] = value
	return nil
}

func (f *FailingKV) Delete(key string) error {
	f.init()
	if f.FailDelete {
		return errors.New("delete failed")
	}
	delete(f.Data, key)
	return nil
}

func (f *FailingKV) Close() error { return nil }

// StaticSeed is a test double for store.SeedSource returning fixed channels.
type StaticSeed struct {
	Seed []models.Channel
	Err  error
}

func (s *StaticSeed) Channels(context.Context) ([]models.Channel, error) {
	return s.Seed, s.Err
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// Channel builds a valid channel record for tests.
func Channel(id int, name string) models.Channel {
	return models.Channel{
		ID:       id,
		Name:     name,
		URL:      "https://www.youtube.com/watch?v=abc123",
		Type:     models.TypeYouTube,
		Category: "news",
		Status:   models.StatusActive,
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}
