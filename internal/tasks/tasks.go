package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"livetv/internal/models"
	"livetv/internal/shared"
	"livetv/internal/storage"
	"livetv/internal/store"
)

// SnapshotVersion tags the channelBackup envelope format.
const SnapshotVersion = "1.0"

// ImportResult holds the outcome of parsing an import document.
type ImportResult struct {
	Accepted      []models.Channel
	RejectedCount int
}

// ParseImport parses document as a sequence of candidate channels.
//
// The whole operation fails with [shared.ErrFormat] when the document is not
// a JSON array or when no candidate is acceptable. A candidate is accepted
// iff name, url, type and category are present; URL format is not re-checked
// here, the export format is trusted.
func ParseImport(document []byte) (*ImportResult, error) {
	var candidates []models.Channel
	if err := json.Unmarshal(document, &candidates); err != nil {
		return nil, fmt.Errorf("%w: document is not a channel array: %v", shared.ErrFormat, err)
	}

	result := &ImportResult{}
	for _, c := range candidates {
		if c.Importable() {
			result.Accepted = append(result.Accepted, c)
		} else {
			result.RejectedCount++
		}
	}

	if len(result.Accepted) == 0 {
		return nil, fmt.Errorf("%w: no valid channels found in document", shared.ErrFormat)
	}
	return result, nil
}

// ExportFilename returns the conventional name for an export document.
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("channels-backup-%s.json", t.UTC().Format("2006-01-02"))
}

// BackupEngine performs export, import and snapshot operations against the
// store and records the corresponding activity and backup events.
type BackupEngine struct {
	store  *store.ChannelStore
	kv     storage.KV
	logger *log.Logger
}

// NewBackupEngine creates a BackupEngine over the given store and backend.
func NewBackupEngine(s *store.ChannelStore, kv storage.KV, logger *log.Logger) *BackupEngine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &BackupEngine{store: s, kv: kv, logger: logger}
}

// Export serializes the full ordered channel list as a pretty-printed JSON
// document and records the export event.
func (e *BackupEngine) Export() ([]byte, error) {
	channels := e.store.List()
	data, err := shared.MarshalJSON(channels, true)
	if err != nil {
		return nil, err
	}

	e.logEvent("Data Exported", "All channels exported to JSON file", "download")
	if err := e.store.Activity().AppendBackupRecord(models.BackupExport, len(channels)); err != nil {
		e.logger.Warn("failed to record export in backup history", "err", err)
	}
	return data, nil
}

// ImportReplace replaces the store's entire contents with the accepted
// records of a parsed import. Confirmation is the caller's responsibility;
// this is the destructive half of the flow.
func (e *BackupEngine) ImportReplace(result *ImportResult) error {
	if result == nil || len(result.Accepted) == 0 {
		return fmt.Errorf("%w: nothing to import", shared.ErrFormat)
	}

	if err := e.store.ReplaceAll(result.Accepted); err != nil {
		return err
	}

	count := len(result.Accepted)
	e.logEvent("Data Imported", fmt.Sprintf("Imported %d channels from file", count), "upload")
	if err := e.store.Activity().AppendBackupRecord(models.BackupImport, count); err != nil {
		e.logger.Warn("failed to record import in backup history", "err", err)
	}
	return nil
}

// Snapshot writes a versioned copy of the current channel list under the
// channelBackup key and returns the envelope.
func (e *BackupEngine) Snapshot() (models.Snapshot, error) {
	snapshot := models.Snapshot{
		Channels:  e.store.List(),
		Timestamp: time.Now().UTC(),
		Version:   SnapshotVersion,
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return models.Snapshot{}, err
	}
	if err := e.kv.Set(storage.KeySnapshot, string(data)); err != nil {
		return models.Snapshot{}, err
	}

	e.logEvent("Data Backed Up", "Local backup created successfully", "save")
	return snapshot, nil
}

// LoadSnapshot reads the channelBackup envelope back.
func (e *BackupEngine) LoadSnapshot() (models.Snapshot, error) {
	raw, ok, err := e.kv.Get(storage.KeySnapshot)
	if err != nil {
		return models.Snapshot{}, err
	}
	if !ok {
		return models.Snapshot{}, shared.ErrSnapshotMissing
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: corrupt snapshot: %v", shared.ErrFormat, err)
	}
	return snapshot, nil
}

func (e *BackupEngine) logEvent(title, description, icon string) {
	if err := e.store.Activity().Append(title, description, icon); err != nil {
		e.logger.Warn("failed to record activity", "title", title, "err", err)
	}
}
