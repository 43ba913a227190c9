package service

import (
	"context"
	"time"

	"github.com/lmercer/shiftdoc/internal/discipline"
	"github.com/lmercer/shiftdoc/internal/domain"
)

// IncidentDraft is the candidate incident assembled by the log form. The
// discipline engine, not the caller, decides the resulting action.
type IncidentDraft struct {
	AssociateID string
	Type        domain.ViolationType
	Mode        domain.ReportMode

	// Narrative builder fields; Manual holds free text when Mode is Manual.
	Manual         string
	ReporterName   string
	ActionObserved string
	PostAction     string
	Correction     string

	// ReporterID optionally links the reporting associate for the network
	// view. Distinct from ReporterName, which is free text in the narrative.
	ReporterID string

	Location           string
	CameraFriendlyName string
	Witnesses          string
	ActionNotes        string
	Complied           *bool
	TimeLeftBuilding   string
	ManagerNotified    bool
}

// Evaluation is a dry-run of the save flow: the narrative the builder would
// produce and the action the policy would take, without persisting anything.
type Evaluation struct {
	Narrative  string
	Decision   discipline.Decision
	PriorCount int
	InShift    bool
}

type IncidentService interface {
	// Log validates the draft, applies the discipline policy and appends the
	// finalized incident. Validation failures persist nothing.
	Log(ctx context.Context, draft IncidentDraft) (*domain.Incident, error)
	// Evaluate previews the decision for a draft (used by the form).
	Evaluate(ctx context.Context, draft IncidentDraft) (*Evaluation, error)
	List(ctx context.Context) ([]domain.Incident, error)
	ListByAssociate(ctx context.Context, associateID string) ([]domain.Incident, error)
	// CountOnDate counts incidents on a calendar day; malformed timestamps
	// never match.
	CountOnDate(ctx context.Context, day time.Time) (int, error)
	// ActiveAssociates lists associates still reportable this shift.
	ActiveAssociates(ctx context.Context) ([]domain.Associate, error)
}

type AssociateService interface {
	Add(ctx context.Context, name, employeeID string) (*domain.Associate, error)
	List(ctx context.Context) ([]domain.Associate, error)
	// Remove filters the associate out of the roster. Incidents referencing
	// it are kept and display as "Unknown".
	Remove(ctx context.Context, id string) error
	// ImportSchedule merges a spreadsheet roster, deduplicating by employee
	// id with existing records winning. Returns how many were added.
	ImportSchedule(ctx context.Context, path string) (added int, err error)
}

type SettingsService interface {
	Get(ctx context.Context) (domain.Settings, error)
	// Update applies mutate to the current settings and persists the result
	// wholesale.
	Update(ctx context.Context, mutate func(*domain.Settings)) (domain.Settings, error)
	AddCamera(ctx context.Context, friendlyName string) (*domain.Camera, error)
	RemoveCamera(ctx context.Context, idOrName string) error
	AddLocation(ctx context.Context, name string) error
	RemoveLocation(ctx context.Context, name string) error
}

// Statement bundles rendered text with the suggested export filename.
type Statement struct {
	Text     string
	Filename string
}

type StatementService interface {
	// Daily renders the statement covering the current calendar day.
	Daily(ctx context.Context, associateID string, now time.Time) (*Statement, error)
	// Lifetime renders the statement covering every recorded incident.
	Lifetime(ctx context.Context, associateID string, now time.Time) (*Statement, error)
	// Export writes statement text to path. A write failure leaves no
	// partial file treated as success.
	Export(path string, st *Statement) error
}

// NamedCount pairs a resolved associate name with an incident count.
type NamedCount struct {
	ID    string
	Name  string
	Count int
}

// NetworkRow summarizes one associate's reporting relationships.
type NetworkRow struct {
	ID             string
	Name           string
	ReportedOthers []NamedCount
	ReportedBy     []NamedCount
}

type NetworkService interface {
	Build(ctx context.Context) ([]NetworkRow, error)
}

type ConfigService interface {
	// Export writes {settings, associates} to path; incidents are never
	// included.
	Export(ctx context.Context, path string) error
	// Import replaces settings and merges associates from a snapshot file.
	// A corrupt file leaves current data untouched.
	Import(ctx context.Context, path string) error
}
