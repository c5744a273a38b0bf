package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/apomind/apomind-cli/internal/dbx"
)

// savedAtKey records when the session was last written, next to the record
// itself, so the two never drift apart.
const savedAtKey = SessionKey + "_saved_at"

// SQLiteStore keeps the session record in the metadata table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save writes the record and its timestamp in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, record []byte) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, SessionKey, record); err != nil {
			return err
		}
		return set(ctx, tx, savedAtKey, []byte(time.Now().UTC().Format(time.RFC3339)))
	})
}

// Load returns the stored record, or nil when none exists.
func (s *SQLiteStore) Load(ctx context.Context) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, SessionKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading session record: %w", err)
	}
	return value, nil
}

// SavedAt returns when the record was last written, or the zero time when no
// record exists.
func (s *SQLiteStore) SavedAt(ctx context.Context) (time.Time, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, savedAtKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("loading session timestamp: %w", err)
	}

	t, err := time.Parse(time.RFC3339, string(value))
	if err != nil {
		return time.Time{}, nil
	}
	return t, nil
}

// Clear removes the record and its timestamp in one transaction.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM metadata WHERE key IN (?, ?)`, SessionKey, savedAtKey)
		if err != nil {
			return fmt.Errorf("clearing session record: %w", err)
		}
		return nil
	})
}

func set(ctx context.Context, tx dbx.DBTX, key string, value []byte) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("setting metadata[%s]: %w", key, err)
	}
	return nil
}
