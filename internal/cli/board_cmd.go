package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/horizon/internal/rollup"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBoardCmd(app *App) *cobra.Command {
	var year int
	var teamID string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the interactive planning board",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("board requires an interactive terminal")
			}
			ctx := context.Background()
			doc, err := app.Plan.Load(ctx)
			if err != nil {
				return err
			}
			// Bootstrap so every initiative has a work package to show.
			if created := app.WorkPackages.EnsureWorkPackages(doc, year); created > 0 {
				if err := app.Plan.Save(ctx, doc); err != nil {
					return err
				}
			}

			model := newBoardModel(app, doc)
			model.applyFilters(year, teamID)

			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Planning year to show")
	cmd.Flags().StringVar(&teamID, "team", "", "Filter task rows to one team")

	return cmd
}

func (m *boardModel) applyFilters(year int, teamID string) {
	params := rollup.FilterParams{Year: year, GroupBy: rollup.GroupByAll}
	if teamID != "" {
		params.GroupBy = rollup.GroupByTeam
		params.TeamID = teamID
	}
	m.coord.Model().SetFilters(params)
}
