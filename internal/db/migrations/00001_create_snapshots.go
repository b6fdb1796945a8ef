package migrations

// The snapshots table holds one JSON blob per storage key. The blob column
// type differs by database driver (BLOB for SQLite and MySQL, BYTEA for
// PostgreSQL), so this is a Go migration rather than a shared SQL file.

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateSnapshots, downCreateSnapshots)
}

func upCreateSnapshots(ctx context.Context, tx *sql.Tx) error {
	var ddl string
	switch dialect {
	case "postgres":
		ddl = `CREATE TABLE IF NOT EXISTS snapshots (
    storage_key TEXT PRIMARY KEY,
    data        BYTEA NOT NULL,
    updated_at  TIMESTAMPTZ NOT NULL
)`
	case "mysql":
		ddl = `CREATE TABLE IF NOT EXISTS snapshots (
    storage_key VARCHAR(191) PRIMARY KEY,
    data        MEDIUMBLOB NOT NULL,
    updated_at  TIMESTAMP(6) NOT NULL
)`
	default: // sqlite3
		ddl = `CREATE TABLE IF NOT EXISTS snapshots (
    storage_key TEXT PRIMARY KEY,
    data        BLOB NOT NULL,
    updated_at  TEXT NOT NULL
)`
	}
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create snapshots table: %w", err)
	}
	return nil
}

func downCreateSnapshots(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS snapshots`)
	return err
}
