// Package store persists the single serialized session record.
//
// The store is deliberately dumb: it saves, loads, and clears one opaque
// blob under a well-known key and never interprets its contents. A missing
// record is reported as absence (nil blob), never as an error, so callers
// cannot tell "never logged in" from "cleared".
//
// The SQLite implementation keeps the record in a metadata key/value table,
// created by embedded goose migrations, so the session survives process
// restarts.
package store
