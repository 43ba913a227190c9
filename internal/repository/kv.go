package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lmercer/shiftdoc/internal/db"
)

// Store keys for the persisted collections.
const (
	keyAssociates = "associates"
	keyIncidents  = "incidents"
	keySettings   = "settings"
)

// loadDoc reads and unmarshals the JSON document at key. Returns false
// without error when the key has never been written.
func loadDoc(ctx context.Context, conn db.DBTX, key string, v any) (bool, error) {
	var raw string
	err := conn.QueryRowContext(ctx, `SELECT value FROM store WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s document: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decoding %s document: %w", key, err)
	}
	return true, nil
}

// storeDoc marshals v and rewrites the whole document at key.
func storeDoc(ctx context.Context, conn db.DBTX, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s document: %w", key, err)
	}
	_, err = conn.ExecContext(ctx,
		`INSERT OR REPLACE INTO store (key, value, updated_at) VALUES (?, ?, ?)`,
		key, string(raw), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("writing %s document: %w", key, err)
	}
	return nil
}
