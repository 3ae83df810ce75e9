package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/horizon/internal/board"
	"github.com/alexanderramin/horizon/internal/cli/formatter"
	"github.com/alexanderramin/horizon/internal/service"
	"github.com/spf13/cobra"
)

func newWorkPackageCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wp",
		Short: "Inspect and edit work packages",
	}
	cmd.AddCommand(
		newWorkPackageListCmd(app),
		newWorkPackageAddCmd(app),
		newWorkPackageDeleteCmd(app),
		newWorkPackageSetCmd(app),
	)
	return cmd
}

func newWorkPackageListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <initiative-id>",
		Short: "List the work packages of an initiative",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.Plan.Load(context.Background())
			if err != nil {
				return err
			}
			wps := doc.WorkPackagesFor(args[0])
			if len(wps) == 0 {
				fmt.Println("No work packages.")
				return nil
			}
			for _, wp := range wps {
				fmt.Print(formatter.FormatWorkPackage(doc, wp))
			}
			return nil
		},
	}
}

func newWorkPackageAddCmd(app *App) *cobra.Command {
	var title, start, end string

	cmd := &cobra.Command{
		Use:   "add <initiative-id>",
		Short: "Add a work package with one zero-effort task row per team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			doc, err := app.Plan.Load(ctx)
			if err != nil {
				return err
			}

			overrides := service.WorkPackageOverrides{Title: title, StartDate: start, EndDate: end}
			if title == "" && app.IsInteractive != nil && app.IsInteractive() {
				if err := runWorkPackageForm(&overrides); err != nil {
					return err
				}
			}

			wp, err := app.WorkPackages.AddWorkPackage(doc, args[0], overrides)
			if err != nil {
				return err
			}
			app.Initiatives.RefreshInitiativeDates(doc, args[0])
			app.WorkPackages.SyncInitiativeTotals(doc, args[0])
			if err := app.Plan.Save(ctx, doc); err != nil {
				return err
			}
			fmt.Printf("Added %s\n", wp.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Work package title")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")

	return cmd
}

func newWorkPackageDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <wp-id>",
		Short: "Delete a work package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeadlessEdit(app, board.DeleteWorkPackage{WorkPackageID: args[0]})
		},
	}
}

func newWorkPackageSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <wp-id> <field> <value>",
		Short: "Set a work package field (title, startDate, endDate, status)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeadlessEdit(app, board.FieldEdited{
				Kind:          board.KindWorkPackage,
				WorkPackageID: args[0],
				Field:         args[1],
				Value:         args[2],
			})
		},
	}
}
