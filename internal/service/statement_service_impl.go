package service

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lmercer/shiftdoc/internal/domain"
	"github.com/lmercer/shiftdoc/internal/repository"
	"github.com/lmercer/shiftdoc/internal/statement"
)

type statementService struct {
	incidents  repository.IncidentRepo
	associates repository.AssociateRepo
	settings   repository.SettingsRepo
	renderer   *statement.Renderer
}

func NewStatementService(incidents repository.IncidentRepo, associates repository.AssociateRepo, settings repository.SettingsRepo, renderer *statement.Renderer) StatementService {
	return &statementService{
		incidents:  incidents,
		associates: associates,
		settings:   settings,
		renderer:   renderer,
	}
}

func (s *statementService) Daily(ctx context.Context, associateID string, now time.Time) (*Statement, error) {
	associate, incidents, settings, err := s.gather(ctx, associateID)
	if err != nil {
		return nil, err
	}

	var todays []domain.Incident
	for _, inc := range incidents {
		if inc.OnDate(now) {
			todays = append(todays, inc)
		}
	}
	if len(todays) == 0 {
		return nil, fmt.Errorf("no incidents recorded today for %s", associate.Name)
	}

	return &Statement{
		Text:     s.renderer.Render(todays, associate, settings, now),
		Filename: statement.DailyFilename(associate, now),
	}, nil
}

func (s *statementService) Lifetime(ctx context.Context, associateID string, now time.Time) (*Statement, error) {
	associate, incidents, settings, err := s.gather(ctx, associateID)
	if err != nil {
		return nil, err
	}
	if len(incidents) == 0 {
		return nil, fmt.Errorf("no incidents recorded for %s", associate.Name)
	}

	return &Statement{
		Text:     s.renderer.Render(incidents, associate, settings, now),
		Filename: statement.LifetimeFilename(associate),
	}, nil
}

func (s *statementService) Export(path string, st *Statement) error {
	if err := os.WriteFile(path, []byte(st.Text), 0644); err != nil {
		return fmt.Errorf("writing statement: %w", err)
	}
	return nil
}

// gather loads the associate, its incidents and the settings in one pass.
func (s *statementService) gather(ctx context.Context, associateID string) (domain.Associate, []domain.Incident, domain.Settings, error) {
	associates, err := s.associates.All(ctx)
	if err != nil {
		return domain.Associate{}, nil, domain.Settings{}, err
	}
	associate, found := findAssociate(associates, associateID)
	if !found {
		return domain.Associate{}, nil, domain.Settings{}, fmt.Errorf("associate %q: %w", associateID, repository.ErrNotFound)
	}

	all, err := s.incidents.All(ctx)
	if err != nil {
		return domain.Associate{}, nil, domain.Settings{}, err
	}
	var mine []domain.Incident
	for _, inc := range all {
		if inc.AssociateID == associateID {
			mine = append(mine, inc)
		}
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return domain.Associate{}, nil, domain.Settings{}, err
	}
	return associate, mine, settings, nil
}
