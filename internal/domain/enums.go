package domain

type ViolationType string

const (
	ViolationOSHA      ViolationType = "OSHA"
	ViolationHostility ViolationType = "Hostility"
)

// ValidViolationTypes is the canonical set of accepted violation type strings.
var ValidViolationTypes = map[string]bool{
	"OSHA": true, "Hostility": true,
}

type Action string

const (
	ActionCoached      Action = "Coached"
	ActionWarn         Action = "Warn (Hostility)"
	ActionWarnMgr      Action = "Warn (Hostility) - MGR Notified"
	ActionDismissal    Action = "Dismissal from Work"
	ActionLogged       Action = "Logged"
	// ActionSendHome is a legacy action found in older stored data. It is
	// never newly generated; kept so old incidents still display.
	ActionSendHome Action = "Send Home"
)

// Terminal reports whether the action ends the associate's shift.
func (a Action) Terminal() bool {
	return a == ActionDismissal
}

// ReportMode selects how the incident narrative is assembled.
type ReportMode string

const (
	ReportManual    ReportMode = "Manual"
	ReportWitnessed ReportMode = "Witnessed"
	ReportReported  ReportMode = "Reported"
	ReportBoth      ReportMode = "Both"
)

// ValidReportModes is the canonical set of accepted report mode strings.
var ValidReportModes = map[string]bool{
	"Manual": true, "Witnessed": true, "Reported": true, "Both": true,
}

type ThemeMode string

const (
	ThemeSystem ThemeMode = "system"
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
)
