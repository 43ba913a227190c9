package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Backup and restore the golden config (settings + roster, never incidents)",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "export <file>",
			Short: "Export settings and associates to a JSON snapshot",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Config.Export(context.Background(), args[0]); err != nil {
					return fmt.Errorf("export failed: %w", err)
				}
				fmt.Printf("Config exported to %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "import <file>",
			Short: "Replace settings and merge associates from a snapshot",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.Config.Import(context.Background(), args[0]); err != nil {
					return fmt.Errorf("import failed, existing data untouched: %w", err)
				}
				fmt.Println("Config imported. Incident logs were not affected.")
				return nil
			},
		},
	)

	return cmd
}
