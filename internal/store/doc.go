// Package store owns the in-memory channel collection and keeps it
// consistent with the persistence backend.
//
// [ChannelStore] is the sole writer of the channels key: every mutation is
// serialized and written to the backend before the in-memory state is
// committed, so a failed write leaves the previous state fully intact.
// [ActivityLog] derives bounded, append-only activity and backup histories
// from those mutations.
//
// The store is built for a single active session. It performs no locking of
// its own; callers with concurrent surfaces (the HTTP server) serialize
// access around it.
package store
