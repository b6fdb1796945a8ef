package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// StorageKey is the fixed key the beauty snapshot is stored under. It matches
// the key used by existing saved data.
const StorageKey = "amazing_girl_cosmetic_storage"

// SnapshotStore persists a single opaque blob per storage key. It implements
// store.Persister.
type SnapshotStore struct {
	db  *sqlx.DB
	key string
}

// NewSnapshotStore creates a SnapshotStore bound to the given storage key.
func NewSnapshotStore(db *sqlx.DB, key string) *SnapshotStore {
	return &SnapshotStore{db: db, key: key}
}

// q rebinds ? placeholders to the driver's native format.
func (s *SnapshotStore) q(query string) string { return s.db.Rebind(query) }

// Load returns the stored blob, or (nil, nil) when no snapshot exists.
func (s *SnapshotStore) Load(ctx context.Context) ([]byte, error) {
	var data []byte
	err := s.db.GetContext(ctx, &data, s.q(`SELECT data FROM snapshots WHERE storage_key = ?`), s.key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return data, nil
}

// Save replaces the stored blob. Update-then-insert keeps the upsert portable
// across the three supported dialects.
func (s *SnapshotStore) Save(ctx context.Context, data []byte) error {
	now := time.Now().UTC()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, s.q(`UPDATE snapshots SET data = ?, updated_at = ? WHERE storage_key = ?`), data, now, s.key)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if n == 0 {
		_, err = tx.ExecContext(ctx, s.q(`INSERT INTO snapshots (storage_key, data, updated_at) VALUES (?, ?, ?)`), s.key, data, now)
		if err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Delete removes the stored blob. Deleting a missing snapshot is not an error.
func (s *SnapshotStore) Delete(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.q(`DELETE FROM snapshots WHERE storage_key = ?`), s.key); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	return nil
}
