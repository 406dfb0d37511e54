package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/eduplan/internal/cli"
	"github.com/alexanderramin/eduplan/internal/config"
	"github.com/alexanderramin/eduplan/internal/export"
	"github.com/alexanderramin/eduplan/internal/intelligence"
	"github.com/alexanderramin/eduplan/internal/repository"
	"github.com/alexanderramin/eduplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Workspace:    cfg.WorkspaceFile,
		AnalyzeDelay: cfg.AnalyzeDuration(),
	}

	// Wire services lazily so --file can select the workspace snapshot.
	app.Connect = func(ctx context.Context, workspace string) error {
		store := repository.NewSnapshotStore(workspace)
		session, err := service.LoadSession(ctx, store)
		if err != nil {
			return fmt.Errorf("opening workspace: %w", err)
		}

		app.Planner = service.NewPlannerService(session, service.PlannerDeps{
			Store:    store,
			Exporter: export.NewExporter(export.WithLocation(cfg.Location())),
		}, observers...)

		extractor := intelligence.NewStubExtractor(intelligence.WithStageDelay(cfg.StageDelay()))
		app.Extraction = service.NewExtractionService(extractor, observers...)
		return nil
	}

	// Detect interactive terminal for forms and progress views.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(context.Background())
}
