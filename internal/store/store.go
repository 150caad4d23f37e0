package store

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"livetv/internal/models"
	"livetv/internal/player"
	"livetv/internal/shared"
	"livetv/internal/storage"
)

// SeedSource supplies the initial channel list when the backend is empty.
// Implementations fetch a static JSON document over HTTP or from disk.
type SeedSource interface {
	Channels(ctx context.Context) ([]models.Channel, error)
}

// ChannelStore is the single owner of the in-memory channel collection.
//
// Mutations are persisted before they are committed: when the backend write
// fails, the prior in-memory state is untouched and the error is returned.
type ChannelStore struct {
	kv       storage.KV
	activity *ActivityLog
	logger   *log.Logger
	seed     SeedSource

	channels []models.Channel
	nextID   int
}

// Opts contains the dependencies for creating a ChannelStore.
type Opts struct {
	KV       storage.KV
	Activity *ActivityLog
	Logger   *log.Logger
	Seed     SeedSource
}

// NewChannelStore creates a store over the given backend. A nil Activity log
// is constructed from the same backend; a nil Logger gets the default.
func NewChannelStore(opts Opts) *ChannelStore {
	if opts.Activity == nil {
		opts.Activity = NewActivityLog(opts.KV)
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	return &ChannelStore{
		kv:       opts.KV,
		activity: opts.Activity,
		logger:   opts.Logger,
		seed:     opts.Seed,
		nextID:   1,
	}
}

// Activity returns the store's activity log.
func (s *ChannelStore) Activity() *ActivityLog {
	return s.activity
}

// Load resolves the channel collection: persisted data first, then the seed
// source, then the built-in defaults. A successful load writes the resolved
// set back so the backend self-heals from absent or corrupt data.
func (s *ChannelStore) Load(ctx context.Context) error {
	var channels []models.Channel

	if loadJSON(s.kv, storage.KeyChannels, &channels) {
		s.commit(channels)
		return nil
	}

	if s.seed != nil {
		seeded, err := s.seed.Channels(ctx)
		if err != nil {
			s.logger.Warn("seed source unavailable, using built-in defaults", "err", err)
		} else if len(seeded) > 0 {
			channels = seeded
		}
	}
	if channels == nil {
		channels = DefaultChannels()
	}

	if err := saveJSON(s.kv, storage.KeyChannels, channels); err != nil {
		// Degrade to an in-memory session rather than failing startup.
		s.logger.Warn("failed to write resolved channels back to storage", "err", err)
	}

	s.commit(channels)
	return nil
}

// List returns a copy of the current collection in insertion order.
func (s *ChannelStore) List() []models.Channel {
	out := make([]models.Channel, len(s.channels))
	copy(out, s.channels)
	return out
}

// Get returns the channel with the given id.
func (s *ChannelStore) Get(id int) (models.Channel, error) {
	for _, c := range s.channels {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Channel{}, fmt.Errorf("%w: id %d", shared.ErrNotFound, id)
}

// Add validates fields, assigns the next monotonic id, persists, and emits an
// activity event. The created record is returned.
func (s *ChannelStore) Add(fields models.Fields) (models.Channel, error) {
	now := time.Now().UTC()
	channel := models.Channel{
		ID:        s.nextID,
		Status:    models.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	fields.Apply(&channel)

	if err := channel.Validate(); err != nil {
		return models.Channel{}, err
	}
	if !player.Classify(channel.URL, channel.Type) {
		return models.Channel{}, fmt.Errorf("%w: not a valid %s URL: %s", shared.ErrValidation, channel.Type, channel.URL)
	}

	updated := append(s.List(), channel)
	if err := saveJSON(s.kv, storage.KeyChannels, updated); err != nil {
		return models.Channel{}, err
	}

	s.channels = updated
	s.nextID++
	s.logActivity("Channel Added", fmt.Sprintf("Added new channel: %s", channel.Name), "plus-circle")
	return channel, nil
}

// Update merges fields onto the channel with the given id, preserving its
// creation timestamp, and persists before committing.
func (s *ChannelStore) Update(id int, fields models.Fields) (models.Channel, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Channel{}, fmt.Errorf("%w: id %d", shared.ErrNotFound, id)
	}

	channel := s.channels[idx]
	fields.Apply(&channel)
	channel.ID = id
	channel.CreatedAt = s.channels[idx].CreatedAt
	channel.UpdatedAt = time.Now().UTC()

	if err := channel.Validate(); err != nil {
		return models.Channel{}, err
	}
	if !player.Classify(channel.URL, channel.Type) {
		return models.Channel{}, fmt.Errorf("%w: not a valid %s URL: %s", shared.ErrValidation, channel.Type, channel.URL)
	}

	updated := s.List()
	updated[idx] = channel
	if err := saveJSON(s.kv, storage.KeyChannels, updated); err != nil {
		return models.Channel{}, err
	}

	s.channels = updated
	s.logActivity("Channel Updated", fmt.Sprintf("Updated channel: %s", channel.Name), "edit")
	return channel, nil
}

// Remove deletes the channel with the given id.
func (s *ChannelStore) Remove(id int) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: id %d", shared.ErrNotFound, id)
	}

	name := s.channels[idx].Name
	updated := make([]models.Channel, 0, len(s.channels)-1)
	updated = append(updated, s.channels[:idx]...)
	updated = append(updated, s.channels[idx+1:]...)

	if err := saveJSON(s.kv, storage.KeyChannels, updated); err != nil {
		return err
	}

	s.channels = updated
	s.logActivity("Channel Deleted", fmt.Sprintf("Deleted channel: %s", name), "trash")
	return nil
}

// ReplaceAll swaps the entire collection, keeping the ids carried by the
// replacement records. Used by the import flow after confirmation; the caller
// emits the import activity and backup events.
func (s *ChannelStore) ReplaceAll(channels []models.Channel) error {
	if err := saveJSON(s.kv, storage.KeyChannels, channels); err != nil {
		return err
	}
	s.commit(channels)
	return nil
}

// Clear irreversibly empties the collection and both derived histories.
// The clear event becomes the first entry of the fresh activity log.
func (s *ChannelStore) Clear() error {
	if err := s.kv.Delete(storage.KeyChannels); err != nil {
		return err
	}
	if err := s.activity.Reset(); err != nil {
		return err
	}

	s.channels = nil
	s.nextID = 1
	s.logActivity("Data Cleared", "All data was cleared from storage", "trash")
	return nil
}

// commit installs channels as the in-memory state and advances the id
// counter past the highest id seen.
func (s *ChannelStore) commit(channels []models.Channel) {
	s.channels = channels
	s.nextID = 1
	for _, c := range channels {
		if c.ID >= s.nextID {
			s.nextID = c.ID + 1
		}
	}
}

func (s *ChannelStore) indexOf(id int) int {
	for i, c := range s.channels {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// logActivity records a mutation in the activity log. Log persistence
// failures are reported but never roll back an already-persisted mutation.
func (s *ChannelStore) logActivity(title, description, icon string) {
	if err := s.activity.Append(title, description, icon); err != nil {
		s.logger.Warn("failed to record activity", "title", title, "err", err)
	}
}
