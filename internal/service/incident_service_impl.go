package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lmercer/shiftdoc/internal/discipline"
	"github.com/lmercer/shiftdoc/internal/domain"
	"github.com/lmercer/shiftdoc/internal/repository"
	"github.com/lmercer/shiftdoc/internal/shift"
)

// Validation failures surfaced to the user. None of them leave state behind.
var (
	ErrNoAssociate        = errors.New("no associate selected")
	ErrBlankNarrative     = errors.New("incident details must not be blank")
	ErrOutOfShift         = errors.New("outside scheduled shift hours")
	ErrAssociateDismissed = errors.New("associate was dismissed this shift")
)

type incidentService struct {
	incidents  repository.IncidentRepo
	associates repository.AssociateRepo
	settings   repository.SettingsRepo
	clock      func() time.Time
}

func NewIncidentService(incidents repository.IncidentRepo, associates repository.AssociateRepo, settings repository.SettingsRepo) IncidentService {
	return &incidentService{
		incidents:  incidents,
		associates: associates,
		settings:   settings,
		clock:      time.Now,
	}
}

func (s *incidentService) Evaluate(ctx context.Context, draft IncidentDraft) (*Evaluation, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := s.incidents.All(ctx)
	if err != nil {
		return nil, err
	}
	associates, err := s.associates.All(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	window := shift.Current(now, settings.ShiftStart, settings.ShiftEnd)

	subjectName := "[Associate]"
	for _, a := range associates {
		if a.ID == draft.AssociateID {
			subjectName = a.Name
			break
		}
	}

	prior := discipline.PriorCount(existing, draft.AssociateID, draft.Type, window)
	decision := discipline.Decide(draft.Type, prior, draft.Complied, draft.Mode, settings.ManagerName)
	narrative := discipline.Narrative(discipline.NarrativeInput{
		Mode:        draft.Mode,
		SubjectName: subjectName,
		Reporter:    draft.ReporterName,
		Action:      draft.ActionObserved,
		PostAction:  draft.PostAction,
		Correction:  draft.Correction,
		Manual:      draft.Manual,
	})

	return &Evaluation{
		Narrative:  narrative,
		Decision:   decision,
		PriorCount: prior,
		InShift:    shift.InShift(now, settings.ShiftStart, settings.ShiftEnd),
	}, nil
}

func (s *incidentService) Log(ctx context.Context, draft IncidentDraft) (*domain.Incident, error) {
	if draft.AssociateID == "" {
		return nil, ErrNoAssociate
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	if !settings.BypassShiftWindow && !shift.InShift(now, settings.ShiftStart, settings.ShiftEnd) {
		return nil, fmt.Errorf("%w (%s - %s)", ErrOutOfShift, settings.ShiftStart, settings.ShiftEnd)
	}

	associates, err := s.associates.All(ctx)
	if err != nil {
		return nil, err
	}
	subject, found := findAssociate(associates, draft.AssociateID)
	if !found {
		return nil, fmt.Errorf("associate %q: %w", draft.AssociateID, repository.ErrNotFound)
	}

	existing, err := s.incidents.All(ctx)
	if err != nil {
		return nil, err
	}

	window := shift.Current(now, settings.ShiftStart, settings.ShiftEnd)
	active := discipline.ActiveAssociates(associates, existing, window)
	if _, stillActive := findAssociate(active, subject.ID); !stillActive {
		return nil, ErrAssociateDismissed
	}

	narrative := discipline.Narrative(discipline.NarrativeInput{
		Mode:        draft.Mode,
		SubjectName: subject.Name,
		Reporter:    draft.ReporterName,
		Action:      draft.ActionObserved,
		PostAction:  draft.PostAction,
		Correction:  draft.Correction,
		Manual:      draft.Manual,
	})
	if strings.TrimSpace(narrative) == "" {
		return nil, ErrBlankNarrative
	}

	prior := discipline.PriorCount(existing, subject.ID, draft.Type, window)
	decision := discipline.Decide(draft.Type, prior, draft.Complied, draft.Mode, settings.ManagerName)

	inc := domain.Incident{
		ID:                 uuid.New().String(),
		AssociateID:        subject.ID,
		Type:               draft.Type,
		Details:            narrative,
		Timestamp:          domain.FormatTimestamp(now),
		Location:           draft.Location,
		CameraFriendlyName: draft.CameraFriendlyName,
		Action:             decision.Action,
		ActionNotes:        joinNotes(draft.ActionNotes, decision.Note),
		Witnesses:          draft.Witnesses,
		ManagerNotified:    draft.ManagerNotified || decision.ManagerNotified,
		ReporterID:         draft.ReporterID,
	}

	// Compliance applies to corrective actions only; time-left-building only
	// to dismissals. Unconfirmed reports carry neither.
	switch decision.Action {
	case domain.ActionCoached, domain.ActionWarn, domain.ActionWarnMgr:
		inc.Complied = draft.Complied
	case domain.ActionDismissal:
		inc.TimeLeftBuilding = draft.TimeLeftBuilding
	}

	updated := append(existing, inc)
	if err := s.incidents.ReplaceAll(ctx, updated); err != nil {
		return nil, err
	}
	return &inc, nil
}

func (s *incidentService) List(ctx context.Context) ([]domain.Incident, error) {
	return s.incidents.All(ctx)
}

func (s *incidentService) ListByAssociate(ctx context.Context, associateID string) ([]domain.Incident, error) {
	all, err := s.incidents.All(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Incident
	for _, inc := range all {
		if inc.AssociateID == associateID {
			out = append(out, inc)
		}
	}
	return out, nil
}

func (s *incidentService) CountOnDate(ctx context.Context, day time.Time) (int, error) {
	all, err := s.incidents.All(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, inc := range all {
		if inc.OnDate(day) {
			n++
		}
	}
	return n, nil
}

func (s *incidentService) ActiveAssociates(ctx context.Context) ([]domain.Associate, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	associates, err := s.associates.All(ctx)
	if err != nil {
		return nil, err
	}
	incidents, err := s.incidents.All(ctx)
	if err != nil {
		return nil, err
	}
	window := shift.Current(s.clock(), settings.ShiftStart, settings.ShiftEnd)
	return discipline.ActiveAssociates(associates, incidents, window), nil
}

func findAssociate(associates []domain.Associate, id string) (domain.Associate, bool) {
	for _, a := range associates {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Associate{}, false
}

func joinNotes(notes, policyNote string) string {
	switch {
	case notes == "":
		return policyNote
	case policyNote == "":
		return notes
	default:
		return notes + " " + policyNote
	}
}
