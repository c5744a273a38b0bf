package store

import "context"

// SessionKey is the well-known key the serialized session lives under. It
// matches the storage key the web client used.
const SessionKey = "apomind_user"

// Store is durable persistence for exactly one serialized session record.
//
// Contract:
//   - Save overwrites the record with the given blob.
//   - Load returns the stored blob, or nil when no record exists. A missing
//     record is not an error.
//   - Clear removes the record; clearing an absent record is a no-op.
type Store interface {
	Save(ctx context.Context, record []byte) error
	Load(ctx context.Context) ([]byte, error)
	Clear(ctx context.Context) error
}
