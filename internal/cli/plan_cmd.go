package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/eduplan/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newWeekCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "week",
		Short: "Show the weekly grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := app.Planner.Week(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatWeek(grid))
			return nil
		},
	}
}

func newSuggestCmd(app *App) *cobra.Command {
	var quick bool

	cmd := &cobra.Command{
		Use:     "suggest",
		Aliases: []string{"suggestions"},
		Short:   "Analyze the timetable and print suggestions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if app.interactive() && !quick && app.AnalyzeDelay > 0 {
				stopSpinner := formatter.StartSpinner(cmd.ErrOrStderr(), "Analyzing your timetable...")
				err := sleepCtx(ctx, app.AnalyzeDelay)
				stopSpinner()
				if err != nil {
					return err
				}
			}

			suggestions, err := app.Planner.Suggest(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSuggestions(suggestions))
			return nil
		},
	}

	cmd.Flags().BoolVar(&quick, "quick", false, "Skip the analysis animation")

	return cmd
}

func newConflictsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts",
		Short: "List overlapping courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			conflicts, err := app.Planner.Conflicts(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatConflicts(conflicts))
			return nil
		},
	}
}

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show credits, weekly hours and per-day load",
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.Planner.Summary(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSummary(w))
			return nil
		},
	}
}

// sleepCtx waits for d or until ctx is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
