package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/lmercer/shiftdoc/internal/cli/formatter"
)

func newAssociateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "associate",
		Short: "Manage the associate roster",
	}

	cmd.AddCommand(
		newAssociateAddCmd(app),
		newAssociateListCmd(app),
		newAssociateRemoveCmd(app),
		newAssociateImportCmd(app),
	)

	return cmd
}

func newAssociateAddCmd(app *App) *cobra.Command {
	var name, eeid string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an associate manually",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if name == "" && app.interactive() {
				if err := themedForm(huh.NewGroup(
					huh.NewInput().Title("Name").Validate(validateNotBlank).Value(&name),
					huh.NewInput().Title("EEID").Validate(validateNotBlank).Value(&eeid),
				)).Run(); err != nil {
					return err
				}
			}

			a, err := app.Associates.Add(ctx, name, eeid)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s (eeid %s)\n", a.Name, a.EmployeeID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Associate name")
	cmd.Flags().StringVar(&eeid, "eeid", "", "Employee ID")

	return cmd
}

func newAssociateListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			associates, err := app.Associates.List(context.Background())
			if err != nil {
				return err
			}
			if len(associates) == 0 {
				fmt.Println("No associates on the roster.")
				return nil
			}
			for _, a := range associates {
				fmt.Printf("%s  %s  %s\n",
					formatter.StyleBold.Render(a.Name),
					formatter.StyleDim.Render("eeid "+a.EmployeeID),
					formatter.StyleDim.Render(shortID(a.ID)))
			}
			return nil
		},
	}
}

func newAssociateRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <associate>",
		Short: "Remove an associate (existing incidents are kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveAssociate(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Associates.Remove(ctx, id); err != nil {
				return err
			}
			fmt.Println("Removed. Incidents referencing this associate will display as Unknown.")
			return nil
		},
	}
}

func newAssociateImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <schedule-file>",
		Short: "Import associates from a schedule spreadsheet (XLSX, CSV fallback)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			added, err := app.Associates.ImportSchedule(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			fmt.Printf("Imported %d new associate(s); existing employee ids were kept.\n", added)
			return nil
		},
	}
}
