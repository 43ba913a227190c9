package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lmercer/shiftdoc/internal/cli/formatter"
	"github.com/lmercer/shiftdoc/internal/domain"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change configuration",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
		newSettingsCameraCmd(app),
		newSettingsLocationCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("%s %s - %s\n", formatter.StyleHeader.Render("Shift Schedule (24h):"), s.ShiftStart, s.ShiftEnd)
			fmt.Printf("%s %s\n", formatter.StyleHeader.Render("Store #:"), s.StoreNumber)
			fmt.Printf("%s %s\n", formatter.StyleHeader.Render("On-duty Manager:"), orDash(s.ManagerName))
			fmt.Printf("%s %s\n", formatter.StyleHeader.Render("Theme:"), string(s.ThemeMode))
			fmt.Printf("%s %v\n", formatter.StyleHeader.Render("Bypass shift window (debug):"), s.BypassShiftWindow)

			fmt.Println(formatter.StyleHeader.Render("Camera Manifest:"))
			if len(s.CameraPresets) == 0 {
				fmt.Println("  (none)")
			}
			for _, cam := range s.CameraPresets {
				fmt.Printf("  %s  %s\n", cam.FriendlyName, formatter.StyleDim.Render(shortID(cam.ID)))
			}

			fmt.Println(formatter.StyleHeader.Render("Location Tags:"))
			if len(s.LocationPresets) == 0 {
				fmt.Println("  (none)")
			}
			for _, loc := range s.LocationPresets {
				fmt.Printf("  %s\n", loc)
			}
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var shiftStart, shiftEnd, store, manager, theme string
	var bypass string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			if shiftStart != "" {
				if err := validateClock(shiftStart); err != nil {
					return fmt.Errorf("invalid --shift-start: %w", err)
				}
			}
			if shiftEnd != "" {
				if err := validateClock(shiftEnd); err != nil {
					return fmt.Errorf("invalid --shift-end: %w", err)
				}
			}
			if theme != "" {
				switch domain.ThemeMode(theme) {
				case domain.ThemeSystem, domain.ThemeLight, domain.ThemeDark:
				default:
					return fmt.Errorf("invalid --theme %q (system, light, dark)", theme)
				}
			}

			// Only flags given on the command line touch the stored value;
			// an empty --manager deliberately clears the name.
			updated, err := app.Settings.Update(context.Background(), func(s *domain.Settings) {
				cmd.Flags().Visit(func(f *pflag.Flag) {
					switch f.Name {
					case "shift-start":
						s.ShiftStart = shiftStart
					case "shift-end":
						s.ShiftEnd = shiftEnd
					case "store":
						s.StoreNumber = store
					case "manager":
						s.ManagerName = manager
					case "theme":
						s.ThemeMode = domain.ThemeMode(theme)
					case "bypass-shift-window":
						s.BypassShiftWindow = strings.EqualFold(bypass, "on") || strings.EqualFold(bypass, "true")
					}
				})
			})
			if err != nil {
				return err
			}
			fmt.Printf("Saved. Shift %s - %s, store %s.\n", updated.ShiftStart, updated.ShiftEnd, updated.StoreNumber)
			return nil
		},
	}

	cmd.Flags().StringVar(&shiftStart, "shift-start", "", "Shift start, 24h HH:mm")
	cmd.Flags().StringVar(&shiftEnd, "shift-end", "", "Shift end, 24h HH:mm")
	cmd.Flags().StringVar(&store, "store", "", "Store number")
	cmd.Flags().StringVar(&manager, "manager", "", "On-duty manager name used in notification notes")
	cmd.Flags().StringVar(&theme, "theme", "", "Theme: system, light or dark")
	cmd.Flags().StringVar(&bypass, "bypass-shift-window", "", "Debug: allow reports outside shift hours (on/off)")

	return cmd
}

func newSettingsCameraCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "camera",
		Short: "Manage camera presets",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <friendly-name>",
			Short: "Add a camera preset",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cam, err := app.Settings.AddCamera(context.Background(), args[0])
				if err != nil {
					return err
				}
				fmt.Printf("Added camera %s\n", cam.FriendlyName)
				return nil
			},
		},
		&cobra.Command{
			Use:   "remove <id-or-name>",
			Short: "Remove a camera preset",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.Settings.RemoveCamera(context.Background(), args[0])
			},
		},
	)

	return cmd
}

func newSettingsLocationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "location",
		Short: "Manage location tags",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <name>",
			Short: "Add a location tag",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.Settings.AddLocation(context.Background(), args[0])
			},
		},
		&cobra.Command{
			Use:   "remove <name>",
			Short: "Remove a location tag",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return app.Settings.RemoveLocation(context.Background(), args[0])
			},
		},
	)

	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
