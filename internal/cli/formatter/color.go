package formatter

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lmercer/shiftdoc/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ViolationStyle colors a violation type the way the original app did:
// safety in yellow, hostility in red.
func ViolationStyle(t domain.ViolationType) lipgloss.Style {
	switch t {
	case domain.ViolationOSHA:
		return StyleYellow
	case domain.ViolationHostility:
		return StyleRed
	default:
		return StyleDim
	}
}

// ActionStyle colors an action chip: terminal actions in red, escalated
// warns in yellow, everything else green.
func ActionStyle(a domain.Action) lipgloss.Style {
	switch a {
	case domain.ActionDismissal, domain.ActionSendHome:
		return StyleRed
	case domain.ActionWarnMgr:
		return StyleYellow
	case domain.ActionLogged:
		return StyleDim
	default:
		return StyleGreen
	}
}
