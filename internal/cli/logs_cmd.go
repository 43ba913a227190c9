package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lmercer/shiftdoc/internal/cli/formatter"
	"github.com/lmercer/shiftdoc/internal/domain"
)

func newLogsCmd(app *App) *cobra.Command {
	var flat bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Browse incident logs grouped by associate",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if app.interactive() && !flat {
				return runLogsBrowser(ctx, app)
			}
			return printLogs(ctx, app, flat)
		},
	}
	cmd.Flags().BoolVar(&flat, "flat", false, "Print a flat chronological list instead of grouping")

	cmd.AddCommand(newLogsCopyCmd(app))
	return cmd
}

func printLogs(ctx context.Context, app *App, flat bool) error {
	incidents, err := app.Incidents.List(ctx)
	if err != nil {
		return err
	}
	if len(incidents) == 0 {
		fmt.Println(formatter.StyleDim.Render("No incidents recorded."))
		return nil
	}
	names, err := associateNames(ctx, app)
	if err != nil {
		return err
	}

	if flat {
		for _, inc := range incidents {
			fmt.Println(formatter.IncidentLine(inc, nameOrUnknown(names, inc.AssociateID)))
		}
		return nil
	}

	for _, group := range formatter.GroupByAssociate(incidents, names) {
		fmt.Printf("%s %s\n",
			formatter.StyleHeader.Render(group.Name),
			formatter.StyleDim.Render(fmt.Sprintf("(%d)", len(group.Incidents))))
		for _, inc := range group.Incidents {
			fmt.Println(formatter.IncidentCard(inc, group.Name))
		}
	}
	return nil
}

func newLogsCopyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <incident-id>",
		Short: "Copy an incident's narrative to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			inc, err := findIncident(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := clipboard.WriteAll(inc.Details); err != nil {
				return fmt.Errorf("copying to clipboard: %w", err)
			}
			fmt.Println(formatter.StyleGreen.Render("Narrative copied to clipboard."))
			return nil
		},
	}
}

// findIncident matches an incident by full id or unique id prefix.
func findIncident(ctx context.Context, app *App, idOrPrefix string) (*domain.Incident, error) {
	incidents, err := app.Incidents.List(ctx)
	if err != nil {
		return nil, err
	}

	var matches []domain.Incident
	for _, inc := range incidents {
		if inc.ID == idOrPrefix {
			return &inc, nil
		}
		if strings.HasPrefix(inc.ID, idOrPrefix) {
			matches = append(matches, inc)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no incident matching %q", idOrPrefix)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("ambiguous incident id %q (%d matches)", idOrPrefix, len(matches))
	}
}

func runLogsBrowser(ctx context.Context, app *App) error {
	incidents, err := app.Incidents.List(ctx)
	if err != nil {
		return err
	}
	names, err := associateNames(ctx, app)
	if err != nil {
		return err
	}

	model := newLogsModel(formatter.GroupByAssociate(incidents, names))
	_, err = tea.NewProgram(model).Run()
	return err
}
