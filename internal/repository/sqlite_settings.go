package repository

import (
	"context"

	"github.com/lmercer/shiftdoc/internal/db"
	"github.com/lmercer/shiftdoc/internal/domain"
)

// SQLiteSettingsRepo stores the settings singleton as a JSON object
// document.
type SQLiteSettingsRepo struct {
	db db.DBTX
}

// NewSQLiteSettingsRepo creates a new SQLiteSettingsRepo.
func NewSQLiteSettingsRepo(conn db.DBTX) *SQLiteSettingsRepo {
	return &SQLiteSettingsRepo{db: conn}
}

func (r *SQLiteSettingsRepo) Get(ctx context.Context) (domain.Settings, error) {
	s := domain.DefaultSettings()
	found, err := loadDoc(ctx, r.db, keySettings, &s)
	if err != nil {
		return domain.Settings{}, err
	}
	if !found {
		return domain.DefaultSettings(), nil
	}
	// Older documents may predate fields added since; backfill defaults.
	s.Normalize()
	return s, nil
}

func (r *SQLiteSettingsRepo) Put(ctx context.Context, s domain.Settings) error {
	return storeDoc(ctx, r.db, keySettings, s)
}
