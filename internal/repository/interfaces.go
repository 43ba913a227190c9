package repository

import (
	"context"

	"github.com/lmercer/shiftdoc/internal/domain"
)

// The persisted state is three JSON documents, each loaded and rewritten
// wholesale. The transaction unit is "one full collection rewrite"; there is
// exactly one logical writer, so no finer granularity is needed.

type AssociateRepo interface {
	All(ctx context.Context) ([]domain.Associate, error)
	ReplaceAll(ctx context.Context, associates []domain.Associate) error
}

type IncidentRepo interface {
	All(ctx context.Context) ([]domain.Incident, error)
	ReplaceAll(ctx context.Context, incidents []domain.Incident) error
}

type SettingsRepo interface {
	// Get returns the stored settings, or defaults when nothing has been
	// saved yet.
	Get(ctx context.Context) (domain.Settings, error)
	Put(ctx context.Context, s domain.Settings) error
}
