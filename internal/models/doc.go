// Package models defines the domain entities for the live TV channel directory.
//
// The package contains three categories of types:
//
// 1. The core entity:
//   - [Channel] : A named streaming source with a playable URL, a category tag, and lifecycle metadata
//   - [Fields] : The mutable subset of a channel, captured from the admin surface
//
// 2. Derived, append-only records:
//   - [ActivityRecord] : Operator actions, retained as the most recent 50
//   - [BackupRecord] : Import/export events, retained as the most recent 10
//
// 3. The persistence envelope:
//   - [Snapshot] : A versioned local backup of the full channel list
//
// JSON field names follow the on-disk document format (camelCase), so exported
// documents and the persistence backend share one representation.
package models
