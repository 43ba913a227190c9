package cli

import (
	"github.com/spf13/cobra"

	"github.com/lmercer/shiftdoc/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Incidents  service.IncidentService
	Associates service.AssociateService
	Settings   service.SettingsService
	Statements service.StatementService
	Network    service.NetworkService
	Config     service.ConfigService

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// are only offered when it is.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "shiftdoc" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "shiftdoc",
		Short: "Incident logging and corrective action statements for shift supervisors",
	}

	root.AddCommand(
		newIncidentCmd(app),
		newAssociateCmd(app),
		newSettingsCmd(app),
		newStatementCmd(app),
		newLogsCmd(app),
		newNetworkCmd(app),
		newConfigCmd(app),
		newDashboardCmd(app),
	)

	return root
}
