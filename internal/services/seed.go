package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"livetv/internal/models"
	"livetv/internal/shared"
)

// seedFetchTimeout bounds the one-shot startup fetch; a stalled seed source
// must not stall the whole session.
const seedFetchTimeout = 10 * time.Second

// SeedClient loads the seed document (a JSON array of channels) from an HTTP
// URL, falling back to a local file. It implements store.SeedSource.
type SeedClient struct {
	url        string
	path       string
	httpClient *http.Client
}

// NewSeedClient creates a SeedClient from the seed configuration. A nil
// client gets a default with the fetch timeout applied.
func NewSeedClient(cfg shared.SeedConfig, client *http.Client) *SeedClient {
	if client == nil {
		client = &http.Client{Timeout: seedFetchTimeout}
	}
	return &SeedClient{
		url:        cfg.URL,
		path:       cfg.Path,
		httpClient: client,
	}
}

// Channels resolves the seed document: the URL first when configured, then
// the local file. Both missing means there is no seed source.
func (s *SeedClient) Channels(ctx context.Context) ([]models.Channel, error) {
	if s.url != "" {
		channels, err := s.fetch(ctx)
		if err == nil {
			return channels, nil
		}
		if s.path == "" {
			return nil, err
		}
	}

	if s.path != "" {
		return s.read()
	}

	return nil, fmt.Errorf("no seed source configured")
}

func (s *SeedClient) fetch(ctx context.Context) ([]models.Channel, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create seed request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("seed fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seed fetch failed: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed response: %w", err)
	}

	return decodeSeed(body)
}

func (s *SeedClient) read() ([]models.Channel, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return decodeSeed(data)
}

func decodeSeed(data []byte) ([]models.Channel, error) {
	var channels []models.Channel
	if err := json.Unmarshal(data, &channels); err != nil {
		return nil, fmt.Errorf("%w: seed document is not a channel array: %v", shared.ErrFormat, err)
	}
	return channels, nil
}
