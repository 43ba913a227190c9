package db

import (
	"database/sql"
	"fmt"
)

// The store is a key/value table of JSON documents: one document per
// persisted collection (associates, incidents, settings). Every mutation
// rewrites a whole document, so the schema never needs per-field migration;
// compatibility with older documents is handled at decode time.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS store (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
