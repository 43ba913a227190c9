package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lmercer/shiftdoc/internal/domain"
	"github.com/lmercer/shiftdoc/internal/repository"
)

var ErrBlankPreset = errors.New("preset name must not be blank")

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context) (domain.Settings, error) {
	return s.settings.Get(ctx)
}

func (s *settingsService) Update(ctx context.Context, mutate func(*domain.Settings)) (domain.Settings, error) {
	cur, err := s.settings.Get(ctx)
	if err != nil {
		return domain.Settings{}, err
	}
	mutate(&cur)
	cur.Normalize()
	if err := s.settings.Put(ctx, cur); err != nil {
		return domain.Settings{}, err
	}
	return cur, nil
}

func (s *settingsService) AddCamera(ctx context.Context, friendlyName string) (*domain.Camera, error) {
	friendlyName = strings.TrimSpace(friendlyName)
	if friendlyName == "" {
		return nil, ErrBlankPreset
	}
	cam := domain.Camera{
		ID:           uuid.New().String(),
		FriendlyName: friendlyName,
	}
	_, err := s.Update(ctx, func(st *domain.Settings) {
		st.CameraPresets = append(st.CameraPresets, cam)
	})
	if err != nil {
		return nil, err
	}
	return &cam, nil
}

func (s *settingsService) RemoveCamera(ctx context.Context, idOrName string) error {
	removed := false
	_, err := s.Update(ctx, func(st *domain.Settings) {
		kept := st.CameraPresets[:0:0]
		for _, c := range st.CameraPresets {
			if c.ID == idOrName || strings.EqualFold(c.FriendlyName, idOrName) {
				removed = true
				continue
			}
			kept = append(kept, c)
		}
		st.CameraPresets = kept
	})
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("camera %q: %w", idOrName, repository.ErrNotFound)
	}
	return nil
}

func (s *settingsService) AddLocation(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankPreset
	}
	_, err := s.Update(ctx, func(st *domain.Settings) {
		for _, loc := range st.LocationPresets {
			if loc == name {
				return
			}
		}
		st.LocationPresets = append(st.LocationPresets, name)
	})
	return err
}

func (s *settingsService) RemoveLocation(ctx context.Context, name string) error {
	removed := false
	_, err := s.Update(ctx, func(st *domain.Settings) {
		kept := st.LocationPresets[:0:0]
		for _, loc := range st.LocationPresets {
			if loc == name {
				removed = true
				continue
			}
			kept = append(kept, loc)
		}
		st.LocationPresets = kept
	})
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("location %q: %w", name, repository.ErrNotFound)
	}
	return nil
}
