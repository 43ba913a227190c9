package discipline

import (
	"fmt"

	"github.com/lmercer/shiftdoc/internal/domain"
)

// NarrativeInput holds the report-builder fields. Blank fields substitute
// bracket placeholders so a half-filled preview still reads sensibly.
type NarrativeInput struct {
	Mode        domain.ReportMode
	SubjectName string
	Reporter    string
	Action      string
	PostAction  string
	Correction  string
	Manual      string
}

// Narrative assembles the incident details text for the chosen report mode.
func Narrative(in NarrativeInput) string {
	subject := orPlaceholder(in.SubjectName, "[Associate]")
	rep := orPlaceholder(in.Reporter, "[Reporter]")
	act := orPlaceholder(in.Action, "[Action]")
	postAct := orPlaceholder(in.PostAction, "[Post Action]")
	corr := orPlaceholder(in.Correction, "[Correction]")

	switch in.Mode {
	case domain.ReportWitnessed:
		return fmt.Sprintf("MOD witnessed Associate %s %s. MOD Corrected Associate %s, %q Logged.",
			subject, act, subject, corr)
	case domain.ReportReported:
		return fmt.Sprintf("Associate %s reported to MOD that Associate %s was %s. When MOD went to check, Associate %s was %s. Cannot Correct, but logged.",
			rep, subject, act, subject, postAct)
	case domain.ReportBoth:
		return fmt.Sprintf("Associate %s reported to MOD that Associate %s was %s. When MOD went to check, Associate %s was still %s. MOD corrected Associate %s %q. Logged.",
			rep, subject, act, subject, act, subject, corr)
	default:
		return in.Manual
	}
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
