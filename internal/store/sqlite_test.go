package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", "file:store_"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return NewSQLiteStore(db)
}

func TestLoad_AbsentIsNotAnError(t *testing.T) {
	s := setupStore(t)

	record, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestSaveLoadClear(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []byte(`{"id":"1"}`)))

	record, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"1"}`), record)

	savedAt, err := s.SavedAt(ctx)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), savedAt, time.Minute)

	// overwrite
	require.NoError(t, s.Save(ctx, []byte(`{"id":"2"}`)))
	record, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"2"}`), record)

	require.NoError(t, s.Clear(ctx))
	record, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, record)

	savedAt, err = s.SavedAt(ctx)
	require.NoError(t, err)
	assert.True(t, savedAt.IsZero())
}

func TestClear_AbsentIsNoop(t *testing.T) {
	s := setupStore(t)
	require.NoError(t, s.Clear(context.Background()))
}

func TestOpen_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "apomind.db")

	s, db, err := Open(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, []byte(`{"id":"1"}`)))
	require.NoError(t, db.Close())

	// A fresh process would do exactly this.
	s2, db2, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })

	record, err := s2.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"1"}`), record)
}
