package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lmercer/shiftdoc/internal/cli/formatter"
	"github.com/lmercer/shiftdoc/internal/service"
)

func newNetworkCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "network",
		Short: "Show who reports whom (incident network map)",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := app.Network.Build(context.Background())
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No reporting relationships found yet.")
				return nil
			}

			fmt.Println(formatter.StyleHeader.Render("Incident Network Map"))
			fmt.Println(formatter.StyleDim.Render("Visualize who is reporting whom to identify patterns."))
			fmt.Println()

			for _, row := range rows {
				fmt.Println(formatter.StyleBold.Render(row.Name))
				if len(row.ReportedOthers) > 0 {
					fmt.Printf("  %s %s\n",
						formatter.StyleBlue.Render("Reported Others:"),
						countList(row.ReportedOthers))
				}
				if len(row.ReportedBy) > 0 {
					fmt.Printf("  %s %s\n",
						formatter.StyleRed.Render("Reported By:"),
						countList(row.ReportedBy))
				}
			}
			return nil
		},
	}
}

func countList(counts []service.NamedCount) string {
	parts := make([]string, 0, len(counts))
	for _, c := range counts {
		parts = append(parts, fmt.Sprintf("%s (%d)", c.Name, c.Count))
	}
	return strings.Join(parts, ", ")
}
