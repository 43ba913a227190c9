package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lmercer/shiftdoc/internal/service"
)

func newStatementCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Generate corrective action statements",
	}

	cmd.AddCommand(
		newStatementScopeCmd(app, "daily", "Statement covering today's incidents",
			func(ctx context.Context, id string) (*service.Statement, error) {
				return app.Statements.Daily(ctx, id, time.Now())
			}),
		newStatementScopeCmd(app, "lifetime", "Statement covering every recorded incident",
			func(ctx context.Context, id string) (*service.Statement, error) {
				return app.Statements.Lifetime(ctx, id, time.Now())
			}),
	)

	return cmd
}

func newStatementScopeCmd(app *App, use, short string, generate func(ctx context.Context, associateID string) (*service.Statement, error)) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   use + " <associate>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveAssociate(ctx, app, args[0])
			if err != nil {
				return err
			}
			st, err := generate(ctx, id)
			if err != nil {
				return err
			}

			if out == "" {
				// No destination chosen: print to stdout instead.
				fmt.Println(st.Text)
				return nil
			}
			if out == "auto" {
				out = st.Filename
			}
			if err := app.Statements.Export(out, st); err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			fmt.Printf("Statement exported to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write to file ('auto' uses the suggested filename)")
	return cmd
}
