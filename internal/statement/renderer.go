// Package statement renders an associate's incident history into a formal
// plain-text corrective action statement. Section contents are computed
// programmatically and substituted into a placeholder template; the default
// template is embedded, and a file of the same name in the configured
// template directory overrides it.
package statement

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/lmercer/shiftdoc/internal/domain"
)

//go:embed templates/statement_template.txt
var defaultTemplate string

const (
	dateLayout = "01/02/2006"
	timeLayout = "15:04"

	// TemplateFile is the override filename looked up in the template dir.
	TemplateFile = "statement_template.txt"
)

// Sections holds the computed contents for each template placeholder.
type Sections struct {
	EmpName            string
	EmpID              string
	StoreNum           string
	Date               string
	WhatHappened       string
	WhenOccurred       string
	WhereOccurred      string
	Witnesses          string
	ToldAnyone         string
	AdditionalComments string
}

// Renderer substitutes computed sections into a statement template.
type Renderer struct {
	// TemplateDir, when non-empty, is checked for an override template
	// before falling back to the embedded default.
	TemplateDir string
}

// Render produces the full statement for the given incidents. Incidents are
// sorted chronologically regardless of input order; blank optional fields
// produce neutral placeholders, never errors.
func (r *Renderer) Render(incidents []domain.Incident, associate domain.Associate, settings domain.Settings, now time.Time) string {
	if len(incidents) == 0 {
		return "No incidents recorded."
	}
	s := BuildSections(incidents, associate, settings, now)
	return s.Apply(r.template())
}

func (r *Renderer) template() string {
	if r.TemplateDir != "" {
		if b, err := os.ReadFile(filepath.Join(r.TemplateDir, TemplateFile)); err == nil {
			return string(b)
		}
	}
	return defaultTemplate
}

// Apply substitutes the sections into the given placeholder template.
func (s Sections) Apply(template string) string {
	rep := strings.NewReplacer(
		"{EMP_NAME}", s.EmpName,
		"{EMP_ID}", s.EmpID,
		"{STORE_NUM}", s.StoreNum,
		"{DATE}", s.Date,
		"{WHAT_HAPPENED}", s.WhatHappened,
		"{WHEN_OCCURRED}", s.WhenOccurred,
		"{WHERE_OCCURRED}", s.WhereOccurred,
		"{WITNESSES}", s.Witnesses,
		"{TOLD_ANYONE}", s.ToldAnyone,
		"{ADDITIONAL_COMMENTS}", s.AdditionalComments,
	)
	return rep.Replace(template)
}

// BuildSections computes every section from the incident set. The inclusion
// rules, not the surrounding formatting, are the contract here.
func BuildSections(incidents []domain.Incident, associate domain.Associate, settings domain.Settings, now time.Time) Sections {
	sorted := SortChronological(incidents)

	return Sections{
		EmpName:            associate.Name,
		EmpID:              associate.EmployeeID,
		StoreNum:           settings.StoreNumber,
		Date:               now.Format(dateLayout),
		WhatHappened:       whatHappened(sorted),
		WhenOccurred:       whenOccurred(sorted),
		WhereOccurred:      whereOccurred(sorted),
		Witnesses:          witnesses(sorted),
		ToldAnyone:         toldAnyone(sorted),
		AdditionalComments: actionTimeline(sorted),
	}
}

// SortChronological orders incidents ascending by timestamp. Unparseable
// timestamps order by their raw string so rendering still succeeds.
func SortChronological(incidents []domain.Incident) []domain.Incident {
	sorted := make([]domain.Incident, len(incidents))
	copy(sorted, incidents)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, oki := sorted[i].Time()
		tj, okj := sorted[j].Time()
		if oki && okj {
			return ti.Before(tj)
		}
		return sorted[i].Timestamp < sorted[j].Timestamp
	})
	return sorted
}

func whatHappened(sorted []domain.Incident) string {
	var b strings.Builder
	for i, inc := range sorted {
		fmt.Fprintf(&b, "Incident %d (%s Violation):\n%s\n", i+1, inc.Type, inc.Details)
		if i < len(sorted)-1 {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func whenOccurred(sorted []domain.Incident) string {
	var b strings.Builder
	b.WriteString("Yes, this document details a history of progressive discipline during the shift:\n")
	for i, inc := range sorted {
		if t, ok := inc.Time(); ok {
			fmt.Fprintf(&b, "- Incident %d: %s at %s\n", i+1, t.Format(dateLayout), t.Format(timeLayout))
		} else {
			fmt.Fprintf(&b, "- Incident %d: %s\n", i+1, inc.Timestamp)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func whereOccurred(sorted []domain.Incident) string {
	var lines []string
	seen := make(map[string]bool)
	for _, inc := range sorted {
		desc := inc.Location
		if inc.CameraFriendlyName != "" {
			if desc != "" {
				desc += fmt.Sprintf(" (Recorded on Camera: %s)", inc.CameraFriendlyName)
			} else {
				desc = fmt.Sprintf("Recorded on Camera: %s", inc.CameraFriendlyName)
			}
		}
		if desc == "" || seen[desc] {
			continue
		}
		seen[desc] = true
		lines = append(lines, "- "+desc)
	}
	if len(lines) == 0 {
		return "- Store Floor"
	}
	return strings.Join(lines, "\n")
}

func witnesses(sorted []domain.Incident) string {
	var names []string
	seen := make(map[string]bool)
	for _, inc := range sorted {
		w := strings.TrimSpace(inc.Witnesses)
		if w == "" || seen[w] {
			continue
		}
		seen[w] = true
		names = append(names, w)
	}
	if len(names) == 0 {
		return "No witnesses recorded."
	}
	return strings.Join(names, ", ")
}

func toldAnyone(sorted []domain.Incident) string {
	for _, inc := range sorted {
		if inc.ManagerNotified {
			return "Yes, Management was immediately notified at the time of the occurrence(s)."
		}
	}
	return "N/A - Management documented this directly."
}

func actionTimeline(sorted []domain.Incident) string {
	var b strings.Builder
	b.WriteString("CORRECTIVE ACTION TIMELINE:\n")
	dismissed := false
	for i, inc := range sorted {
		fmt.Fprintf(&b, "Incident %d Action: %s", i+1, inc.Action)
		if inc.ActionNotes != "" {
			fmt.Fprintf(&b, " (%s)", inc.ActionNotes)
		}
		if inc.Complied != nil {
			fmt.Fprintf(&b, " | Complied: %s", yesNo(*inc.Complied))
		}
		if inc.Action == domain.ActionDismissal {
			dismissed = true
			if inc.TimeLeftBuilding != "" {
				fmt.Fprintf(&b, " | Time Left Building: %s", inc.TimeLeftBuilding)
			}
		}
		b.WriteString("\n")
	}
	if dismissed {
		b.WriteString("\nFINAL OUTCOME: Progressive discipline policy limits were reached, resulting in a Dismissal from Work. This decision is considered final.")
	}
	return strings.TrimRight(b.String(), "\n")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// DailyFilename and LifetimeFilename produce the export names the original
// tool suggested in its save dialog.
func DailyFilename(associate domain.Associate, day time.Time) string {
	return fmt.Sprintf("Daily_Statement_%s_%s.txt", sanitizeName(associate.Name), day.Format("2006-01-02"))
}

func LifetimeFilename(associate domain.Associate) string {
	return fmt.Sprintf("Lifetime_Statement_%s.txt", sanitizeName(associate.Name))
}

func sanitizeName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}
