package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/lmercer/shiftdoc/internal/cli/formatter"
	"github.com/lmercer/shiftdoc/internal/domain"
	"github.com/lmercer/shiftdoc/internal/service"
)

// resolveAssociate matches user input against the roster: exact name,
// employee id, UUID, then UUID prefix.
func resolveAssociate(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("associate is required")
	}

	associates, err := app.Associates.List(ctx)
	if err != nil {
		return "", err
	}

	for _, a := range associates {
		if strings.EqualFold(a.Name, input) || a.EmployeeID == input || a.ID == input {
			return a.ID, nil
		}
	}

	var matches []string
	for _, a := range associates {
		if strings.HasPrefix(a.ID, input) {
			matches = append(matches, a.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("associate not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("associate %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newIncidentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "incident",
		Short: "Log and list incidents",
	}

	cmd.AddCommand(
		newIncidentLogCmd(app),
		newIncidentListCmd(app),
	)

	return cmd
}

func newIncidentLogCmd(app *App) *cobra.Command {
	var (
		associate, vtype, mode                       string
		details, reporter, action, postAct, correct  string
		location, camera, witnesses, notes, timeLeft string
		reporterRef                                  string
		compliedStr                                  string
		managerNotified                              bool
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a new incident (interactive form on a terminal)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var draft service.IncidentDraft
			if app.interactive() && associate == "" {
				d, ok, err := runIncidentForm(ctx, app)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				draft = d
			} else {
				id, err := resolveAssociate(ctx, app, associate)
				if err != nil {
					return err
				}
				if !domain.ValidViolationTypes[vtype] {
					return fmt.Errorf("invalid violation type %q (OSHA or Hostility)", vtype)
				}
				if mode == "" {
					mode = string(domain.ReportManual)
				}
				if !domain.ValidReportModes[mode] {
					return fmt.Errorf("invalid report mode %q (Manual, Witnessed, Reported, Both)", mode)
				}
				draft = service.IncidentDraft{
					AssociateID:        id,
					Type:               domain.ViolationType(vtype),
					Mode:               domain.ReportMode(mode),
					Manual:             details,
					ReporterName:       reporter,
					ActionObserved:     action,
					PostAction:         postAct,
					Correction:         correct,
					Location:           location,
					CameraFriendlyName: camera,
					Witnesses:          witnesses,
					ActionNotes:        notes,
					TimeLeftBuilding:   timeLeft,
					ManagerNotified:    managerNotified,
				}
				if compliedStr != "" {
					v := strings.EqualFold(compliedStr, "yes") || strings.EqualFold(compliedStr, "true")
					draft.Complied = &v
				}
				if reporterRef != "" {
					rid, err := resolveAssociate(ctx, app, reporterRef)
					if err != nil {
						return err
					}
					draft.ReporterID = rid
				}
			}

			inc, err := app.Incidents.Log(ctx, draft)
			if err != nil {
				if errors.Is(err, service.ErrOutOfShift) {
					fmt.Println(formatter.StyleRed.Render("Out of Shift Hours"))
					fmt.Println("Active Reporting: incidents cannot be filed outside the scheduled shift window.")
				}
				return err
			}

			names, nameErr := associateNames(ctx, app)
			if nameErr != nil {
				return nameErr
			}
			fmt.Printf("Logged %s incident against %s\n",
				formatter.ViolationStyle(inc.Type).Render(string(inc.Type)),
				nameOrUnknown(names, inc.AssociateID))
			fmt.Printf("Required action: %s\n", formatter.ActionStyle(inc.Action).Render(string(inc.Action)))
			if inc.ManagerNotified {
				fmt.Println(formatter.StyleBlue.Render("Manager notified."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&associate, "associate", "", "Associate name, employee id or id")
	cmd.Flags().StringVar(&vtype, "type", "", "Violation type: OSHA or Hostility")
	cmd.Flags().StringVar(&mode, "mode", "", "Report mode: Manual, Witnessed, Reported, Both (default Manual)")
	cmd.Flags().StringVar(&details, "details", "", "Narrative text (Manual mode)")
	cmd.Flags().StringVar(&reporter, "reporter", "", "Reporting associate name (Reported/Both)")
	cmd.Flags().StringVar(&action, "action", "", "Action observed, e.g. 'climbing on the equipment'")
	cmd.Flags().StringVar(&postAct, "post-action", "", "Status upon checking (Reported)")
	cmd.Flags().StringVar(&correct, "correction", "", "Correction given (Witnessed/Both)")
	cmd.Flags().StringVar(&location, "location", "", "Literal location")
	cmd.Flags().StringVar(&camera, "camera", "", "Camera friendly name")
	cmd.Flags().StringVar(&witnesses, "witnesses", "", "Witnesses, if any")
	cmd.Flags().StringVar(&notes, "notes", "", "Action notes (what was said)")
	cmd.Flags().StringVar(&compliedStr, "complied", "", "Did they comply: yes or no")
	cmd.Flags().StringVar(&timeLeft, "time-left", "", "Time the associate actually left the building")
	cmd.Flags().StringVar(&reporterRef, "reporter-id", "", "Reporting associate (name/eeid/id) for the network map")
	cmd.Flags().BoolVar(&managerNotified, "manager-notified", false, "Manager was notified at the time")

	return cmd
}

// runIncidentForm walks the supervisor through the log flow with sequential
// forms, showing the computed required action before saving. Returns ok=false
// when the user backs out.
func runIncidentForm(ctx context.Context, app *App) (service.IncidentDraft, bool, error) {
	var draft service.IncidentDraft

	settings, err := app.Settings.Get(ctx)
	if err != nil {
		return draft, false, err
	}

	// Shift gate up front, before any fields are filled in.
	ev, err := app.Incidents.Evaluate(ctx, service.IncidentDraft{Mode: domain.ReportManual})
	if err != nil {
		return draft, false, err
	}
	if !ev.InShift && !settings.BypassShiftWindow {
		fmt.Println(formatter.StyleRed.Render("Out of Shift Hours"))
		fmt.Printf("Active Reporting: you cannot file reports outside your scheduled shift (%s - %s).\n",
			settings.ShiftStart, settings.ShiftEnd)
		return draft, false, nil
	}

	active, err := app.Incidents.ActiveAssociates(ctx)
	if err != nil {
		return draft, false, err
	}
	if len(active) == 0 {
		fmt.Println("No active associates remaining this shift.")
		return draft, false, nil
	}

	var vtype, mode string
	if err := themedForm(huh.NewGroup(
		associateSelect(active, &draft.AssociateID),
		violationSelect(&vtype),
		reportModeSelect(&mode),
	)).Run(); err != nil {
		return draft, false, err
	}
	draft.Type = domain.ViolationType(vtype)
	draft.Mode = domain.ReportMode(mode)

	// Narrative fields depend on the chosen mode.
	var fields []huh.Field
	switch draft.Mode {
	case domain.ReportManual:
		fields = append(fields, huh.NewText().
			Title("Details (What happened?)").
			Validate(validateNotBlank).
			Value(&draft.Manual))
	case domain.ReportWitnessed:
		fields = append(fields,
			huh.NewInput().Title("Action (e.g. climbing on the equipment)").Value(&draft.ActionObserved),
			huh.NewInput().Title("Correction Given").Value(&draft.Correction),
		)
	case domain.ReportReported:
		fields = append(fields,
			huh.NewInput().Title("Reporting Associate Name").Value(&draft.ReporterName),
			huh.NewInput().Title("Action (e.g. climbing on the equipment)").Value(&draft.ActionObserved),
			huh.NewInput().Title("Status upon checking (e.g. off of the equipment)").Value(&draft.PostAction),
		)
	case domain.ReportBoth:
		fields = append(fields,
			huh.NewInput().Title("Reporting Associate Name").Value(&draft.ReporterName),
			huh.NewInput().Title("Action (e.g. climbing on the equipment)").Value(&draft.ActionObserved),
			huh.NewInput().Title("Correction Given").Value(&draft.Correction),
		)
	}
	fields = append(fields,
		locationInput(settings.LocationPresets, &draft.Location),
		cameraSelect(settings.CameraPresets, &draft.CameraFriendlyName),
		huh.NewInput().Title("Witnesses (if any)").Value(&draft.Witnesses),
		huh.NewInput().Title("Action Notes (What was said?)").Value(&draft.ActionNotes),
	)
	if err := themedForm(huh.NewGroup(fields...)).Run(); err != nil {
		return draft, false, err
	}

	// Preview the policy's decision against current history.
	ev, err = app.Incidents.Evaluate(ctx, draft)
	if err != nil {
		return draft, false, err
	}
	fmt.Println(formatter.StyleDim.Render("Generated Narrative Preview:"))
	fmt.Println("  " + ev.Narrative)
	fmt.Printf("Required Action: %s\n", formatter.ActionStyle(ev.Decision.Action).Render(string(ev.Decision.Action)))

	// Follow-up questions track the computed action.
	switch ev.Decision.Action {
	case domain.ActionCoached, domain.ActionWarn, domain.ActionWarnMgr:
		var complied bool
		if err := themedForm(huh.NewGroup(
			huh.NewConfirm().Title("Did they comply?").Value(&complied),
		)).Run(); err != nil {
			return draft, false, err
		}
		draft.Complied = &complied
		// Non-compliance can escalate an OSHA coaching to dismissal; ask for
		// the exit time when it does.
		ev, err = app.Incidents.Evaluate(ctx, draft)
		if err != nil {
			return draft, false, err
		}
		if ev.Decision.Action == domain.ActionDismissal {
			fmt.Printf("Required Action: %s\n", formatter.ActionStyle(ev.Decision.Action).Render(string(ev.Decision.Action)))
		}
	}
	if ev.Decision.Action == domain.ActionDismissal {
		if err := themedForm(huh.NewGroup(
			huh.NewInput().Title("What time did they actually leave?").Value(&draft.TimeLeftBuilding),
		)).Run(); err != nil {
			return draft, false, err
		}
	}

	var save bool
	if err := themedForm(huh.NewGroup(
		huh.NewConfirm().Title("Manager Notified?").Value(&draft.ManagerNotified),
		huh.NewConfirm().Title("Save Incident?").Affirmative("Save").Negative("Discard").Value(&save),
	)).Run(); err != nil {
		return draft, false, err
	}
	return draft, save, nil
}

func newIncidentListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all incidents, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			incidents, err := app.Incidents.List(ctx)
			if err != nil {
				return err
			}
			if len(incidents) == 0 {
				fmt.Println("No incidents logged yet.")
				return nil
			}
			names, err := associateNames(ctx, app)
			if err != nil {
				return err
			}
			for i := len(incidents) - 1; i >= 0; i-- {
				inc := incidents[i]
				fmt.Println(formatter.IncidentCard(inc, nameOrUnknown(names, inc.AssociateID)))
			}
			return nil
		},
	}
	return cmd
}

func associateNames(ctx context.Context, app *App) (map[string]string, error) {
	associates, err := app.Associates.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(associates))
	for _, a := range associates {
		names[a.ID] = a.Name
	}
	return names, nil
}

func nameOrUnknown(names map[string]string, id string) string {
	if name, ok := names[id]; ok && name != "" {
		return name
	}
	return "Unknown"
}
