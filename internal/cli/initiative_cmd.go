package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/horizon/internal/board"
	"github.com/alexanderramin/horizon/internal/cli/formatter"
	"github.com/alexanderramin/horizon/internal/domain"
	"github.com/alexanderramin/horizon/internal/rollup"
	"github.com/spf13/cobra"
)

func newInitiativeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "initiative",
		Aliases: []string{"init"},
		Short:   "Inspect and edit initiatives",
	}
	cmd.AddCommand(
		newInitiativeListCmd(app),
		newInitiativeSetCmd(app),
	)
	return cmd
}

func newInitiativeListCmd(app *App) *cobra.Command {
	var year int
	var statuses []string
	var teamID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List initiatives, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.Plan.Load(context.Background())
			if err != nil {
				return err
			}
			params := rollup.FilterParams{Year: year, GroupBy: rollup.GroupByAll}
			if teamID != "" {
				params.GroupBy = rollup.GroupByTeam
				params.TeamID = teamID
			}
			if len(statuses) > 0 {
				params.Statuses = map[domain.InitiativeStatus]bool{}
				for _, s := range statuses {
					params.Statuses[domain.InitiativeStatus(s)] = true
				}
			}
			fmt.Print(formatter.FormatInitiativeList(doc, rollup.FilteredInitiatives(doc, params)))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Planning year")
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "Statuses to include (repeatable)")
	cmd.Flags().StringVar(&teamID, "team", "", "Only initiatives touching this team")

	return cmd
}

func newInitiativeSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <id> <field> <value>",
		Short: "Set an initiative field (title, startDate, targetDueDate, status)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeadlessEdit(app, board.FieldEdited{
				Kind:         board.KindInitiative,
				InitiativeID: args[0],
				Field:        args[1],
				Value:        args[2],
			})
		},
	}
}
