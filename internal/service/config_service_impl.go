package service

import (
	"context"

	"github.com/lmercer/shiftdoc/internal/db"
	"github.com/lmercer/shiftdoc/internal/domain"
	"github.com/lmercer/shiftdoc/internal/importer"
	"github.com/lmercer/shiftdoc/internal/repository"
)

type configService struct {
	associates repository.AssociateRepo
	settings   repository.SettingsRepo
	uow        db.UnitOfWork
}

func NewConfigService(associates repository.AssociateRepo, settings repository.SettingsRepo, uow db.UnitOfWork) ConfigService {
	return &configService{associates: associates, settings: settings, uow: uow}
}

func (s *configService) Export(ctx context.Context, path string) error {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}
	associates, err := s.associates.All(ctx)
	if err != nil {
		return err
	}
	return importer.SaveConfig(path, importer.ConfigExport{
		Settings:   settings,
		Associates: associates,
	})
}

func (s *configService) Import(ctx context.Context, path string) error {
	cfg, err := importer.LoadConfig(path)
	if err != nil {
		return err
	}

	current, err := s.associates.All(ctx)
	if err != nil {
		return err
	}
	merged := domain.MergeAssociates(current, cfg.Associates)

	// Settings replacement and roster merge land together or not at all.
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteSettingsRepo(tx).Put(ctx, cfg.Settings); err != nil {
			return err
		}
		return repository.NewSQLiteAssociateRepo(tx).ReplaceAll(ctx, merged)
	})
}
