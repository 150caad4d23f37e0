package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"livetv/internal/shared"
)

func validChannel() Channel {
	return Channel{
		ID:       1,
		Name:     "Lofi Girl",
		URL:      "https://www.youtube.com/watch?v=jfKfPfyJRdk",
		Type:     TypeYouTube,
		Category: "music",
		Status:   StatusActive,
	}
}

func TestChannelValidate(t *testing.T) {
	tc := []struct {
		name    string
		mutate  func(*Channel)
		wantErr string
	}{
		{
			name:   "valid channel",
			mutate: func(c *Channel) {},
		},
		{
			name:    "missing name",
			mutate:  func(c *Channel) { c.Name = "  " },
			wantErr: "name",
		},
		{
			name:    "missing url",
			mutate:  func(c *Channel) { c.URL = "" },
			wantErr: "url",
		},
		{
			name:    "unknown type",
			mutate:  func(c *Channel) { c.Type = "twitch" },
			wantErr: "type",
		},
		{
			name:    "missing category",
			mutate:  func(c *Channel) { c.Category = "" },
			wantErr: "category",
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			c := validChannel()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, shared.ErrValidation) {
				t.Errorf("Validate() error = %v, want ErrValidation", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestChannelImportable(t *testing.T) {
	t.Run("complete candidate", func(t *testing.T) {
		if !validChannel().Importable() {
			t.Error("Importable() = false, want true")
		}
	})

	t.Run("unknown type still passes", func(t *testing.T) {
		c := validChannel()
		c.Type = "vimeo"
		if !c.Importable() {
			t.Error("Importable() = false for unknown type, want true")
		}
	})

	t.Run("missing url", func(t *testing.T) {
		c := validChannel()
		c.URL = ""
		if c.Importable() {
			t.Error("Importable() = true without url, want false")
		}
	})
}

func TestFieldsApply(t *testing.T) {
	t.Run("merges non-empty fields only", func(t *testing.T) {
		c := validChannel()
		Fields{Name: "Renamed", Category: "chill"}.Apply(&c)

		if c.Name != "Renamed" || c.Category != "chill" {
			t.Errorf("Apply() = %+v, want renamed with new category", c)
		}
		if c.URL != validChannel().URL || c.Type != TypeYouTube {
			t.Errorf("Apply() touched fields it should not: %+v", c)
		}
	})

	t.Run("never touches id", func(t *testing.T) {
		c := validChannel()
		Fields{Name: "Renamed"}.Apply(&c)
		if c.ID != 1 {
			t.Errorf("Apply() id = %d, want 1", c.ID)
		}
	})
}

func TestChannelJSONFieldNames(t *testing.T) {
	data, err := json.Marshal(validChannel())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	for _, field := range []string{`"id"`, `"name"`, `"url"`, `"type"`, `"category"`, `"status"`, `"createdAt"`, `"updatedAt"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("marshalled channel missing %s: %s", field, data)
		}
	}
	if strings.Contains(string(data), `"description"`) {
		t.Errorf("empty description should be omitted: %s", data)
	}
}

func TestBackupRecordJSON(t *testing.T) {
	data, err := json.Marshal(BackupRecord{Type: BackupExport, Channels: 4})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"channels":4`) {
		t.Errorf("marshalled record = %s, want the count under the channels key", data)
	}
}
