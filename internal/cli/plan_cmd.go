package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/horizon/internal/cli/formatter"
	"github.com/alexanderramin/horizon/internal/rollup"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage the planning document",
	}
	cmd.AddCommand(
		newPlanShowCmd(app),
		newPlanImportCmd(app),
		newPlanBootstrapCmd(app),
		newPlanScheduleCmd(app),
		newPlanConflictsCmd(app),
	)
	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show a summary of the planning document",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.Plan.Load(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatPlanSummary(doc))
			return nil
		},
	}
}

func newPlanImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the planning document with a YAML plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.Plan.Import(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d initiatives, %d work packages, %d teams.\n",
				len(doc.Initiatives), len(doc.WorkPackages), len(doc.Teams))
			return nil
		},
	}
}

func newPlanBootstrapCmd(app *App) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Ensure every initiative has at least one work package",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			doc, err := app.Plan.Load(ctx)
			if err != nil {
				return err
			}
			created := app.WorkPackages.EnsureWorkPackages(doc, year)
			if err := app.Plan.Save(ctx, doc); err != nil {
				return err
			}
			fmt.Printf("Created %d work packages.\n", created)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Limit to initiatives of one planning year")

	return cmd
}

func newPlanScheduleCmd(app *App) *cobra.Command {
	var year, gapDays int

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Push work packages forward past their dependencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			doc, err := app.Plan.Load(ctx)
			if err != nil {
				return err
			}
			result := rollup.AutoSchedule(doc, year, gapDays)
			for _, init := range doc.Initiatives {
				app.Initiatives.RefreshInitiativeDates(doc, init.ID)
			}
			if err := app.Plan.Save(ctx, doc); err != nil {
				return err
			}
			fmt.Print(formatter.FormatAutoSchedule(result))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Limit to initiatives of one planning year")
	cmd.Flags().IntVar(&gapDays, "gap", 1, "Minimum days between a predecessor's end and a successor's start")

	return cmd
}

func newPlanConflictsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts",
		Short: "List dependency ordering violations",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.Plan.Load(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatConflicts(rollup.SchedulingConflicts(doc.WorkPackages)))
			return nil
		},
	}
}
