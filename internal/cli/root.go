package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/eduplan/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Planner    service.PlannerService
	Extraction service.ExtractionService

	// Workspace is the default snapshot file, overridable with --file.
	Workspace string
	// Connect wires Planner and Extraction for a workspace file. It runs
	// before any command when Planner is nil.
	Connect func(ctx context.Context, workspace string) error

	// AnalyzeDelay is the simulated thinking time of the suggest command.
	AnalyzeDelay time.Duration

	// IsInteractive reports whether forms and progress views may be shown.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "eduplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var workspace string

	root := &cobra.Command{
		Use:           "eduplan",
		Short:         "Student timetable planner",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Planner != nil || app.Connect == nil {
				return nil
			}
			return app.Connect(cmd.Context(), workspace)
		},
	}
	root.PersistentFlags().StringVar(&workspace, "file", app.Workspace, "Workspace snapshot file")

	root.AddCommand(
		newCourseCmd(app),
		newWeekCmd(app),
		newSuggestCmd(app),
		newConflictsCmd(app),
		newSummaryCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newExtractCmd(app),
	)

	return root
}
