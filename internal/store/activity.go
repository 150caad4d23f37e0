package store

import (
	"encoding/json"
	"time"

	"livetv/internal/models"
	"livetv/internal/shared"
	"livetv/internal/storage"
)

const (
	// activityCap bounds the activity log; oldest entries are evicted first.
	activityCap = 50
	// backupCap bounds the backup history.
	backupCap = 10
	// RecentDisplay is the number of entries the dashboard shows.
	RecentDisplay = 5
)

// ActivityLog persists the operator activity and backup histories as bounded,
// append-only JSON documents in the key-value backend.
type ActivityLog struct {
	kv storage.KV
}

// NewActivityLog creates an ActivityLog over the given backend.
func NewActivityLog(kv storage.KV) *ActivityLog {
	return &ActivityLog{kv: kv}
}

// Append pushes a timestamped entry and trims the log to the most recent 50.
func (l *ActivityLog) Append(title, description, icon string) error {
	records := l.activities()

	records = append(records, models.ActivityRecord{
		ID:          shared.GenerateID(),
		Title:       title,
		Description: description,
		Icon:        icon,
		Timestamp:   time.Now().UTC(),
	})
	if len(records) > activityCap {
		records = records[len(records)-activityCap:]
	}

	return saveJSON(l.kv, storage.KeyActivity, records)
}

// Recent returns up to n entries, newest first. n <= 0 uses the dashboard
// display cap.
func (l *ActivityLog) Recent(n int) []models.ActivityRecord {
	if n <= 0 {
		n = RecentDisplay
	}

	records := l.activities()
	out := make([]models.ActivityRecord, 0, n)
	for i := len(records) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, records[i])
	}
	return out
}

// AppendBackupRecord pushes an import/export event and trims the history to
// the most recent 10.
func (l *ActivityLog) AppendBackupRecord(kind models.BackupKind, channelCount int) error {
	records := l.backups()

	records = append(records, models.BackupRecord{
		Type:      kind,
		Channels:  channelCount,
		Timestamp: time.Now().UTC(),
	})
	if len(records) > backupCap {
		records = records[len(records)-backupCap:]
	}

	return saveJSON(l.kv, storage.KeyBackupHistory, records)
}

// BackupHistory returns all retained backup records, newest first.
func (l *ActivityLog) BackupHistory() []models.BackupRecord {
	records := l.backups()
	out := make([]models.BackupRecord, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		out = append(out, records[i])
	}
	return out
}

// Reset removes both histories from the backend.
func (l *ActivityLog) Reset() error {
	if err := l.kv.Delete(storage.KeyActivity); err != nil {
		return err
	}
	return l.kv.Delete(storage.KeyBackupHistory)
}

// activities loads the stored activity log, degrading to empty on absent or
// corrupt data.
func (l *ActivityLog) activities() []models.ActivityRecord {
	var records []models.ActivityRecord
	loadJSON(l.kv, storage.KeyActivity, &records)
	return records
}

func (l *ActivityLog) backups() []models.BackupRecord {
	var records []models.BackupRecord
	loadJSON(l.kv, storage.KeyBackupHistory, &records)
	return records
}

// loadJSON reads and decodes the document at key, reporting whether a usable
// document was present. v is only assigned on a clean decode, so a document
// that fails mid-decode never leaves partial data behind.
func loadJSON[T any](kv storage.KV, key string, v *T) bool {
	raw, ok, err := kv.Get(key)
	if err != nil || !ok {
		return false
	}
	var decoded T
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return false
	}
	*v = decoded
	return true
}

func saveJSON(kv storage.KV, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return kv.Set(key, string(data))
}
