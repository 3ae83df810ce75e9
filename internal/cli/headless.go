package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/horizon/internal/board"
	"github.com/alexanderramin/horizon/internal/domain"
)

// newHeadlessCoordinator builds a coordinator with no renderer or view
// attached, so non-TUI commands go through the same mutation path as
// the board.
func newHeadlessCoordinator(app *App, doc *domain.PlanDocument) *board.Coordinator {
	return board.NewCoordinator(board.Config{
		Doc:          doc,
		Model:        board.NewModel(),
		WorkPackages: app.WorkPackages,
		Initiatives:  app.Initiatives,
		Notify: func(message string) {
			fmt.Fprintln(os.Stderr, message)
		},
		Save: func() {
			if err := app.Plan.Save(context.Background(), doc); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
		},
	})
}

// runHeadlessEdit loads the document, dispatches one view event, and
// relies on the coordinator's save hook for persistence.
func runHeadlessEdit(app *App, event board.ViewEvent) error {
	doc, err := app.Plan.Load(context.Background())
	if err != nil {
		return err
	}
	newHeadlessCoordinator(app, doc).HandleViewEvent(event)
	return nil
}
