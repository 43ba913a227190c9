package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lmercer/shiftdoc/internal/cli/formatter"
	"github.com/lmercer/shiftdoc/internal/domain"
	"github.com/lmercer/shiftdoc/internal/teatest"
)

func testGroups() []formatter.IncidentGroup {
	return []formatter.IncidentGroup{
		{
			AssociateID: "a1",
			Name:        "Alice",
			Incidents: []domain.Incident{
				{
					ID:        "11111111-aaaa",
					Type:      domain.ViolationOSHA,
					Action:    domain.ActionCoached,
					Details:   "alice narrative",
					Timestamp: "2026-03-10T22:00:00",
				},
			},
		},
		{
			AssociateID: "a2",
			Name:        "Bob",
			Incidents: []domain.Incident{
				{
					ID:        "22222222-bbbb",
					Type:      domain.ViolationHostility,
					Action:    domain.ActionWarn,
					Details:   "bob narrative",
					Timestamp: "2026-03-10T23:00:00",
				},
			},
		},
	}
}

func TestLogsModel_GroupsStartCollapsed(t *testing.T) {
	d := teatest.New(t, newLogsModel(testGroups()))
	view := d.View()
	assert.Contains(t, view, "Alice")
	assert.Contains(t, view, "Bob")
	assert.NotContains(t, view, "alice narrative")
}

func TestLogsModel_ExpandShowsIncidents(t *testing.T) {
	d := teatest.New(t, newLogsModel(testGroups()))
	d.PressEnter()
	view := d.View()
	assert.Contains(t, view, "11111111")
	assert.Contains(t, view, string(domain.ViolationOSHA))

	// Toggling again collapses.
	d.PressEnter()
	assert.NotContains(t, d.View(), "11111111")
}

func TestLogsModel_CursorNavigation(t *testing.T) {
	d := teatest.New(t, newLogsModel(testGroups()))
	d.PressDown()
	d.PressEnter()
	view := d.View()
	assert.Contains(t, view, "22222222", "second group expands")
	assert.NotContains(t, view, "11111111")

	// Cursor stops at the boundaries.
	d.PressUp()
	d.PressUp()
	d.PressUp()
	d.PressEnter()
	assert.Contains(t, d.View(), "11111111")
}

func TestLogsModel_QuitKeys(t *testing.T) {
	d := teatest.New(t, newLogsModel(testGroups()))
	d.Press('q')
	assert.True(t, d.Quitting)
}

func TestLogsModel_EmptyState(t *testing.T) {
	d := teatest.New(t, newLogsModel(nil))
	assert.Contains(t, d.View(), "No incidents recorded.")
}
