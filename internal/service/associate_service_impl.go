package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lmercer/shiftdoc/internal/domain"
	"github.com/lmercer/shiftdoc/internal/importer"
	"github.com/lmercer/shiftdoc/internal/repository"
)

var ErrBlankAssociate = errors.New("name and employee id are required")

type associateService struct {
	associates repository.AssociateRepo
}

func NewAssociateService(associates repository.AssociateRepo) AssociateService {
	return &associateService{associates: associates}
}

func (s *associateService) Add(ctx context.Context, name, employeeID string) (*domain.Associate, error) {
	name = strings.TrimSpace(name)
	employeeID = strings.TrimSpace(employeeID)
	if name == "" || employeeID == "" {
		return nil, ErrBlankAssociate
	}

	current, err := s.associates.All(ctx)
	if err != nil {
		return nil, err
	}

	a := domain.Associate{
		ID:         uuid.New().String(),
		Name:       name,
		EmployeeID: employeeID,
	}
	if err := s.associates.ReplaceAll(ctx, append(current, a)); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *associateService) List(ctx context.Context) ([]domain.Associate, error) {
	return s.associates.All(ctx)
}

func (s *associateService) Remove(ctx context.Context, id string) error {
	current, err := s.associates.All(ctx)
	if err != nil {
		return err
	}
	kept := current[:0:0]
	found := false
	for _, a := range current {
		if a.ID == id {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return fmt.Errorf("associate %q: %w", id, repository.ErrNotFound)
	}
	return s.associates.ReplaceAll(ctx, kept)
}

func (s *associateService) ImportSchedule(ctx context.Context, path string) (int, error) {
	imported, err := importer.ImportSchedule(path)
	if err != nil {
		return 0, err
	}
	current, err := s.associates.All(ctx)
	if err != nil {
		return 0, err
	}
	merged := domain.MergeAssociates(current, imported)
	added := len(merged) - len(current)
	if added == 0 {
		return 0, nil
	}
	if err := s.associates.ReplaceAll(ctx, merged); err != nil {
		return 0, err
	}
	return added, nil
}
