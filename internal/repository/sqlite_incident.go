package repository

import (
	"context"

	"github.com/lmercer/shiftdoc/internal/db"
	"github.com/lmercer/shiftdoc/internal/domain"
)

// SQLiteIncidentRepo stores the incident log as a single JSON array
// document. The log is append-only at the service layer; the repo itself
// only knows wholesale rewrite.
type SQLiteIncidentRepo struct {
	db db.DBTX
}

// NewSQLiteIncidentRepo creates a new SQLiteIncidentRepo.
func NewSQLiteIncidentRepo(conn db.DBTX) *SQLiteIncidentRepo {
	return &SQLiteIncidentRepo{db: conn}
}

func (r *SQLiteIncidentRepo) All(ctx context.Context) ([]domain.Incident, error) {
	var incidents []domain.Incident
	if _, err := loadDoc(ctx, r.db, keyIncidents, &incidents); err != nil {
		return nil, err
	}
	return incidents, nil
}

func (r *SQLiteIncidentRepo) ReplaceAll(ctx context.Context, incidents []domain.Incident) error {
	if incidents == nil {
		incidents = []domain.Incident{}
	}
	return storeDoc(ctx, r.db, keyIncidents, incidents)
}
