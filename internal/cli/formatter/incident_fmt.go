package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lmercer/shiftdoc/internal/domain"
)

const displayTimeLayout = "Jan 02, 15:04"

// IncidentLine renders a one-line incident summary for list output.
func IncidentLine(inc domain.Incident, associateName string) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(associateName))
	b.WriteString("  ")
	b.WriteString(ViolationStyle(inc.Type).Render(string(inc.Type)))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(DisplayTime(inc)))
	b.WriteString("  ")
	b.WriteString(ActionStyle(inc.Action).Render(string(inc.Action)))
	return b.String()
}

// IncidentCard renders the full incident details block.
func IncidentCard(inc domain.Incident, associateName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", IncidentLine(inc, associateName))
	fmt.Fprintf(&b, "  %s\n", StyleFg.Render(inc.Details))
	if inc.Location != "" || inc.CameraFriendlyName != "" {
		where := inc.Location
		if inc.CameraFriendlyName != "" {
			where = strings.TrimSpace(where + " [" + inc.CameraFriendlyName + "]")
		}
		fmt.Fprintf(&b, "  %s %s\n", StyleDim.Render("where:"), where)
	}
	if inc.ActionNotes != "" {
		fmt.Fprintf(&b, "  %s %s\n", StyleDim.Render("notes:"), inc.ActionNotes)
	}
	if inc.Witnesses != "" {
		fmt.Fprintf(&b, "  %s %s\n", StyleDim.Render("witnesses:"), inc.Witnesses)
	}
	if inc.ManagerNotified {
		fmt.Fprintf(&b, "  %s\n", StyleBlue.Render("manager notified"))
	}
	if inc.TimeLeftBuilding != "" {
		fmt.Fprintf(&b, "  %s %s\n", StyleDim.Render("left building:"), inc.TimeLeftBuilding)
	}
	return b.String()
}

// DisplayTime formats the incident timestamp for terminal output. Malformed
// timestamps display truncated raw rather than erroring.
func DisplayTime(inc domain.Incident) string {
	if t, ok := inc.Time(); ok {
		return t.Format(displayTimeLayout)
	}
	if len(inc.Timestamp) > 16 {
		return inc.Timestamp[:16]
	}
	return inc.Timestamp
}

// GroupByAssociate orders incidents into per-associate buckets, each bucket
// newest first, with bucket order by associate name.
func GroupByAssociate(incidents []domain.Incident, names map[string]string) []IncidentGroup {
	byID := make(map[string][]domain.Incident)
	for _, inc := range incidents {
		byID[inc.AssociateID] = append(byID[inc.AssociateID], inc)
	}

	groups := make([]IncidentGroup, 0, len(byID))
	for id, list := range byID {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Timestamp > list[j].Timestamp
		})
		name, ok := names[id]
		if !ok || name == "" {
			name = "Unknown Associate"
		}
		groups = append(groups, IncidentGroup{AssociateID: id, Name: name, Incidents: list})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	return groups
}

// IncidentGroup is one associate's incidents for the grouped log view.
type IncidentGroup struct {
	AssociateID string
	Name        string
	Incidents   []domain.Incident
}
