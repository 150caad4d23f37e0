package models

import (
	"fmt"
	"strings"
	"time"

	"livetv/internal/shared"
)

// ChannelType identifies the streaming platform a channel lives on.
type ChannelType string

const (
	TypeYouTube  ChannelType = "youtube"
	TypeFacebook ChannelType = "facebook"
)

// Valid reports whether t is one of the known platforms.
func (t ChannelType) Valid() bool {
	return t == TypeYouTube || t == TypeFacebook
}

// ChannelStatus marks a channel as visible to the viewer surface or not.
type ChannelStatus string

const (
	StatusActive   ChannelStatus = "active"
	StatusInactive ChannelStatus = "inactive"
)

// Channel is the core entity: a named streaming source with a playable URL.
//
// ID and CreatedAt are immutable after creation; UpdatedAt is refreshed on
// every mutation.
type Channel struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	URL         string        `json:"url"`
	Type        ChannelType   `json:"type"`
	Category    string        `json:"category"`
	Description string        `json:"description,omitempty"`
	Status      ChannelStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Validate checks the invariants every stored channel must satisfy:
// non-empty name, url and category, and a known type. URL format validity
// against the channel's type is the normalizer's concern, not the model's.
func (c Channel) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", shared.ErrValidation)
	}
	if strings.TrimSpace(c.URL) == "" {
		return fmt.Errorf("%w: url is required", shared.ErrValidation)
	}
	if !c.Type.Valid() {
		return fmt.Errorf("%w: type must be youtube or facebook", shared.ErrValidation)
	}
	if strings.TrimSpace(c.Category) == "" {
		return fmt.Errorf("%w: category is required", shared.ErrValidation)
	}
	return nil
}

// Importable reports whether a candidate record from an external document is
// acceptable: name, url, type and category present. Looser than [Channel.Validate]
// in that any non-empty type string passes, matching the trusted export format.
func (c Channel) Importable() bool {
	return c.Name != "" && c.URL != "" && c.Type != "" && c.Category != ""
}

// Fields is the mutable subset of a channel captured from the admin surface.
type Fields struct {
	Name        string        `json:"name"`
	URL         string        `json:"url"`
	Type        ChannelType   `json:"type"`
	Category    string        `json:"category"`
	Description string        `json:"description,omitempty"`
	Status      ChannelStatus `json:"status,omitempty"`
}

// Apply merges non-empty fields onto the channel. ID and CreatedAt are never
// touched; the caller refreshes UpdatedAt.
func (f Fields) Apply(c *Channel) {
	if f.Name != "" {
		c.Name = f.Name
	}
	if f.URL != "" {
		c.URL = f.URL
	}
	if f.Type != "" {
		c.Type = f.Type
	}
	if f.Category != "" {
		c.Category = f.Category
	}
	if f.Description != "" {
		c.Description = f.Description
	}
	if f.Status != "" {
		c.Status = f.Status
	}
}

// ActivityRecord is one entry of the append-only operator activity log.
type ActivityRecord struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Timestamp   time.Time `json:"timestamp"`
}

// BackupKind distinguishes import and export events in the backup history.
type BackupKind string

const (
	BackupImport BackupKind = "import"
	BackupExport BackupKind = "export"
)

// BackupRecord is one entry of the append-only backup history.
// The Channels field carries the affected channel count, matching the
// document format of the original directory.
type BackupRecord struct {
	Type      BackupKind `json:"type"`
	Channels  int        `json:"channels"`
	Timestamp time.Time  `json:"timestamp"`
}

// Snapshot is the versioned local backup envelope stored under the
// channelBackup key.
type Snapshot struct {
	Channels  []Channel `json:"channels"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}
