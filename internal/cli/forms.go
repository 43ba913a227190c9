package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/lmercer/shiftdoc/internal/cli/formatter"
	"github.com/lmercer/shiftdoc/internal/domain"
)

func shiftdocHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func themedForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(shiftdocHuhTheme()).WithShowHelp(false)
}

// associateSelect builds a select over the active roster.
func associateSelect(associates []domain.Associate, value *string) *huh.Select[string] {
	options := make([]huh.Option[string], 0, len(associates))
	for _, a := range associates {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", a.Name, a.EmployeeID), a.ID))
	}
	return huh.NewSelect[string]().
		Title("Associate").
		Options(options...).
		Value(value)
}

func violationSelect(value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("Violation Type").
		Options(
			huh.NewOption("OSHA (safety)", string(domain.ViolationOSHA)),
			huh.NewOption("Hostility (conduct)", string(domain.ViolationHostility)),
		).
		Value(value)
}

func reportModeSelect(value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("Report Builder").
		Options(
			huh.NewOption("Manual", string(domain.ReportManual)),
			huh.NewOption("Witnessed", string(domain.ReportWitnessed)),
			huh.NewOption("Reported", string(domain.ReportReported)),
			huh.NewOption("Reported & Witnessed", string(domain.ReportBoth)),
		).
		Value(value)
}

// cameraSelect offers configured camera presets plus a "none" option.
func cameraSelect(presets []domain.Camera, value *string) *huh.Select[string] {
	options := []huh.Option[string]{huh.NewOption("(none)", "")}
	for _, cam := range presets {
		options = append(options, huh.NewOption(cam.FriendlyName, cam.FriendlyName))
	}
	return huh.NewSelect[string]().
		Title("Camera Selection").
		Options(options...).
		Value(value)
}

// locationInput suggests configured location presets.
func locationInput(presets []string, value *string) *huh.Input {
	in := huh.NewInput().
		Title("Literal Location (e.g. Sales Floor)").
		Value(value)
	if len(presets) > 0 {
		in = in.Suggestions(presets)
	}
	return in
}

func validateClock(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("15:04", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use 24h HH:mm, e.g. 21:00")
	}
	return nil
}

func validateNotBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("must not be blank")
	}
	return nil
}
