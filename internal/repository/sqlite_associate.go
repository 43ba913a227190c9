package repository

import (
	"context"

	"github.com/lmercer/shiftdoc/internal/db"
	"github.com/lmercer/shiftdoc/internal/domain"
)

// SQLiteAssociateRepo stores the roster as a single JSON array document.
type SQLiteAssociateRepo struct {
	db db.DBTX
}

// NewSQLiteAssociateRepo creates a new SQLiteAssociateRepo.
func NewSQLiteAssociateRepo(conn db.DBTX) *SQLiteAssociateRepo {
	return &SQLiteAssociateRepo{db: conn}
}

func (r *SQLiteAssociateRepo) All(ctx context.Context) ([]domain.Associate, error) {
	var associates []domain.Associate
	if _, err := loadDoc(ctx, r.db, keyAssociates, &associates); err != nil {
		return nil, err
	}
	return associates, nil
}

func (r *SQLiteAssociateRepo) ReplaceAll(ctx context.Context, associates []domain.Associate) error {
	if associates == nil {
		associates = []domain.Associate{}
	}
	return storeDoc(ctx, r.db, keyAssociates, associates)
}
