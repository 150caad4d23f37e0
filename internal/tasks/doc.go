// Package tasks implements the portable-document operations around the
// channel store: export to JSON, import with replace-not-merge semantics,
// and versioned local snapshots.
//
// Parsing and filtering of import documents is pure ([ParseImport]);
// [BackupEngine] wires the results into the store, the activity log, and the
// backup history.
package tasks
