package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmercer/shiftdoc/internal/cli/formatter"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Shift overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			count, err := app.Incidents.CountOnDate(ctx, time.Now())
			if err != nil {
				return err
			}
			settings, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			fmt.Println(formatter.StyleHeader.Render("Dashboard"))
			fmt.Println(formatter.StyleDim.Render(fmt.Sprintf("Shift %s - %s, store %s", settings.ShiftStart, settings.ShiftEnd, settings.StoreNumber)))
			fmt.Println()
			fmt.Println(formatter.StyleDim.Render("INCIDENTS TONIGHT"))
			fmt.Println(formatter.StyleBold.Render(fmt.Sprintf("%d", count)))
			return nil
		},
	}
}
