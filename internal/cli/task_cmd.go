package cli

import (
	"github.com/alexanderramin/horizon/internal/board"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Inspect and edit task rows on work packages",
	}
	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskDeleteCmd(app),
		newTaskSetCmd(app),
	)
	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <wp-id>",
		Short: "Add a task row for the first team without one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeadlessEdit(app, board.AddTask{WorkPackageID: args[0]})
		},
	}
}

func newTaskDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <wp-id> <team-id>",
		Short: "Delete a team's task row",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeadlessEdit(app, board.DeleteTask{WorkPackageID: args[0], TeamID: args[1]})
		},
	}
}

func newTaskSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <wp-id> <team-id> <field> <value>",
		Short: "Set a task field (startDate, endDate, sdeDays, sdeYears)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeadlessEdit(app, board.FieldEdited{
				Kind:          board.KindAssignment,
				WorkPackageID: args[0],
				TeamID:        args[1],
				Field:         args[2],
				Value:         args[3],
			})
		},
	}
}
