package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/horizon/internal/cli"
	"github.com/alexanderramin/horizon/internal/db"
	"github.com/alexanderramin/horizon/internal/repository"
	"github.com/alexanderramin/horizon/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.horizon/horizon.db
	dbPath := os.Getenv("HORIZON_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".horizon", "horizon.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	planRepo := repository.NewSQLitePlanRepo(database)

	var observer service.MutationObserver = service.NoopMutationObserver{}
	if os.Getenv("HORIZON_LOG") != "" {
		observer = service.NewLogMutationObserver(os.Stderr)
	}

	app := &cli.App{
		Plan:         service.NewPlanService(planRepo, observer),
		WorkPackages: service.NewWorkPackageService(observer),
		Initiatives:  service.NewInitiativeService(observer),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Seed from a plan file when the database is empty and HORIZON_PLAN
	// points at one.
	if planPath := os.Getenv("HORIZON_PLAN"); planPath != "" {
		if err := seedIfEmpty(app, planPath); err != nil {
			return err
		}
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func seedIfEmpty(app *cli.App, planPath string) error {
	ctx := context.Background()
	doc, err := app.Plan.Load(ctx)
	if err != nil {
		return err
	}
	if len(doc.Initiatives) > 0 || len(doc.Teams) > 0 {
		return nil
	}
	if _, err := app.Plan.Import(ctx, planPath); err != nil {
		return fmt.Errorf("seeding from %s: %w", planPath, err)
	}
	return nil
}
