// package storage provides the synchronous key-value persistence backend for
// the channel directory.
//
// The directory, its activity log, and its backup history are each stored as
// a single JSON document under a well-known key. [SQLiteKV] is the production
// implementation; [MemoryKV] backs tests.
package storage

// Well-known keys of the persistence backend.
const (
	KeyChannels      = "channels"
	KeyActivity      = "adminActivity"
	KeyBackupHistory = "backupHistory"
	KeySnapshot      = "channelBackup"
)

// KV is a string-keyed, string-valued synchronous store.
//
// Get reports whether the key was present; an absent key is not an error.
// Set overwrites any existing value. Every call either fully succeeds or
// returns an error with the backend unchanged.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}
