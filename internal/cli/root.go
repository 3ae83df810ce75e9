package cli

import (
	"github.com/alexanderramin/horizon/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plan         service.PlanService
	WorkPackages service.WorkPackageService
	Initiatives  service.InitiativeService

	// IsInteractive reports whether stdin is a terminal; interactive
	// commands fall back to flag-only behavior when it is not.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "horizon" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "horizon",
		Short: "Strategic planning board with hierarchical date rollup",
	}

	root.AddCommand(
		newBoardCmd(app),
		newPlanCmd(app),
		newInitiativeCmd(app),
		newWorkPackageCmd(app),
		newTaskCmd(app),
	)

	return root
}
