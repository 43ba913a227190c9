package statement

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmercer/shiftdoc/internal/domain"
)

func testAssociate() domain.Associate {
	return domain.Associate{ID: "a1", Name: "Alice Smith", EmployeeID: "12345"}
}

func testSettings() domain.Settings {
	s := domain.DefaultSettings()
	s.StoreNumber = "318"
	return s
}

func incidentAt(t time.Time, vtype domain.ViolationType, action domain.Action, details string) domain.Incident {
	return domain.Incident{
		ID:          "inc-" + t.Format("150405"),
		AssociateID: "a1",
		Type:        vtype,
		Action:      action,
		Details:     details,
		Timestamp:   domain.FormatTimestamp(t),
	}
}

func TestRender_EmptyHistory(t *testing.T) {
	r := &Renderer{}
	got := r.Render(nil, testAssociate(), testSettings(), time.Now())
	assert.Equal(t, "No incidents recorded.", got)
}

func TestBuildSections_Identity(t *testing.T) {
	now := time.Date(2026, time.March, 11, 2, 0, 0, 0, time.Local)
	inc := incidentAt(now.Add(-time.Hour), domain.ViolationOSHA, domain.ActionCoached, "details")

	s := BuildSections([]domain.Incident{inc}, testAssociate(), testSettings(), now)
	assert.Equal(t, "Alice Smith", s.EmpName)
	assert.Equal(t, "12345", s.EmpID)
	assert.Equal(t, "318", s.StoreNum)
	assert.Equal(t, "03/11/2026", s.Date)
}

func TestBuildSections_ChronologicalRegardlessOfInputOrder(t *testing.T) {
	base := time.Date(2026, time.March, 10, 22, 0, 0, 0, time.Local)
	later := incidentAt(base.Add(2*time.Hour), domain.ViolationHostility, domain.ActionWarnMgr, "second event")
	earlier := incidentAt(base, domain.ViolationHostility, domain.ActionWarn, "first event")

	s := BuildSections([]domain.Incident{later, earlier}, testAssociate(), testSettings(), base)
	assert.Contains(t, s.WhatHappened, "Incident 1 (Hostility Violation):\nfirst event")
	assert.Contains(t, s.WhatHappened, "Incident 2 (Hostility Violation):\nsecond event")
	assert.Contains(t, s.WhenOccurred, "- Incident 1: 03/10/2026 at 22:00")
	assert.Contains(t, s.WhenOccurred, "- Incident 2: 03/11/2026 at 00:00")
}

func TestBuildSections_WhereDeduplicatesAndDefaults(t *testing.T) {
	base := time.Date(2026, time.March, 10, 22, 0, 0, 0, time.Local)

	a := incidentAt(base, domain.ViolationOSHA, domain.ActionCoached, "x")
	a.Location = "Receiving Dock"
	b := incidentAt(base.Add(time.Hour), domain.ViolationOSHA, domain.ActionCoached, "y")
	b.Location = "Receiving Dock"
	c := incidentAt(base.Add(2*time.Hour), domain.ViolationOSHA, domain.ActionCoached, "z")
	c.CameraFriendlyName = "Dock Cam 2"

	s := BuildSections([]domain.Incident{a, b, c}, testAssociate(), testSettings(), base)
	assert.Equal(t, "- Receiving Dock\n- Recorded on Camera: Dock Cam 2", s.WhereOccurred)

	// No location anywhere falls back to the store floor.
	bare := incidentAt(base, domain.ViolationOSHA, domain.ActionCoached, "x")
	s = BuildSections([]domain.Incident{bare}, testAssociate(), testSettings(), base)
	assert.Equal(t, "- Store Floor", s.WhereOccurred)
}

func TestBuildSections_Witnesses(t *testing.T) {
	base := time.Date(2026, time.March, 10, 22, 0, 0, 0, time.Local)
	a := incidentAt(base, domain.ViolationOSHA, domain.ActionCoached, "x")
	a.Witnesses = "Bob Jones"
	b := incidentAt(base.Add(time.Hour), domain.ViolationOSHA, domain.ActionCoached, "y")

	s := BuildSections([]domain.Incident{a, b}, testAssociate(), testSettings(), base)
	assert.Equal(t, "Bob Jones", s.Witnesses)

	s = BuildSections([]domain.Incident{b}, testAssociate(), testSettings(), base)
	assert.Equal(t, "No witnesses recorded.", s.Witnesses)
}

func TestBuildSections_ToldAnyone(t *testing.T) {
	base := time.Date(2026, time.March, 10, 22, 0, 0, 0, time.Local)
	a := incidentAt(base, domain.ViolationHostility, domain.ActionWarnMgr, "x")
	a.ManagerNotified = true

	s := BuildSections([]domain.Incident{a}, testAssociate(), testSettings(), base)
	assert.Contains(t, s.ToldAnyone, "Management was immediately notified")

	plain := incidentAt(base, domain.ViolationOSHA, domain.ActionCoached, "x")
	s = BuildSections([]domain.Incident{plain}, testAssociate(), testSettings(), base)
	assert.Equal(t, "N/A - Management documented this directly.", s.ToldAnyone)
}

func TestBuildSections_TimelineWithDismissal(t *testing.T) {
	base := time.Date(2026, time.March, 10, 22, 0, 0, 0, time.Local)
	warn := incidentAt(base, domain.ViolationHostility, domain.ActionWarn, "x")
	complied := true
	warn.Complied = &complied
	dismissal := incidentAt(base.Add(time.Hour), domain.ViolationHostility, domain.ActionDismissal, "y")
	dismissal.TimeLeftBuilding = "23:15"

	s := BuildSections([]domain.Incident{warn, dismissal}, testAssociate(), testSettings(), base)
	assert.Contains(t, s.AdditionalComments, "Incident 1 Action: Warn (Hostility) | Complied: Yes")
	assert.Contains(t, s.AdditionalComments, "Incident 2 Action: Dismissal from Work | Time Left Building: 23:15")
	assert.Contains(t, s.AdditionalComments, "FINAL OUTCOME")
	assert.Contains(t, s.AdditionalComments, "This decision is considered final.")
}

func TestBuildSections_TimelineWithoutDismissalHasNoFinalOutcome(t *testing.T) {
	base := time.Date(2026, time.March, 10, 22, 0, 0, 0, time.Local)
	s := BuildSections([]domain.Incident{
		incidentAt(base, domain.ViolationOSHA, domain.ActionCoached, "x"),
	}, testAssociate(), testSettings(), base)
	assert.NotContains(t, s.AdditionalComments, "FINAL OUTCOME")
}

func TestApply_SubstitutesPlaceholders(t *testing.T) {
	s := Sections{EmpName: "Alice", StoreNum: "318"}
	got := s.Apply("Employee: {EMP_NAME} / Store: {STORE_NUM}")
	assert.Equal(t, "Employee: Alice / Store: 318", got)
}

func TestRender_DefaultTemplateLeavesNoPlaceholders(t *testing.T) {
	base := time.Date(2026, time.March, 10, 22, 0, 0, 0, time.Local)
	r := &Renderer{}
	got := r.Render([]domain.Incident{
		incidentAt(base, domain.ViolationOSHA, domain.ActionCoached, "details"),
	}, testAssociate(), testSettings(), base)
	assert.NotContains(t, got, "{EMP_NAME}")
	assert.NotContains(t, got, "{WHAT_HAPPENED}")
	assert.Contains(t, got, "Alice Smith")
}

func TestRender_TemplateDirOverride(t *testing.T) {
	dir := t.TempDir()
	custom := "CUSTOM {EMP_NAME}"
	require.NoError(t, os.WriteFile(filepath.Join(dir, TemplateFile), []byte(custom), 0644))

	base := time.Date(2026, time.March, 10, 22, 0, 0, 0, time.Local)
	r := &Renderer{TemplateDir: dir}
	got := r.Render([]domain.Incident{
		incidentAt(base, domain.ViolationOSHA, domain.ActionCoached, "details"),
	}, testAssociate(), testSettings(), base)
	assert.Equal(t, "CUSTOM Alice Smith", got)
}

func TestFilenames(t *testing.T) {
	a := testAssociate()
	day := time.Date(2026, time.March, 11, 2, 0, 0, 0, time.Local)
	assert.Equal(t, "Daily_Statement_Alice_Smith_2026-03-11.txt", DailyFilename(a, day))
	assert.Equal(t, "Lifetime_Statement_Alice_Smith.txt", LifetimeFilename(a))
}
