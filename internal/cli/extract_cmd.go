package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/alexanderramin/eduplan/internal/cli/formatter"
	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/alexanderramin/eduplan/internal/intelligence"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// errExtractionCancelled is returned when the user leaves the progress view.
var errExtractionCancelled = errors.New("extraction cancelled")

func newExtractCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "extract FILE",
		Short: "Extract courses from a course plan document",
		Long: "Analyze a course plan (PDF, Word, TXT, PNG or JPG) and propose the courses it contains.\n" +
			"The proposed courses are added after review, or directly with --yes.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			drafts, err := runExtraction(cmd, app, args[0])
			if err != nil {
				return err
			}

			fmt.Fprint(out, formatter.FormatDrafts(drafts))
			if len(drafts) == 0 {
				return nil
			}

			switch {
			case yes:
			case app.interactive():
				drafts, err = reviewDrafts(drafts)
				if err != nil {
					return err
				}
				if len(drafts) == 0 {
					fmt.Fprintln(out, formatter.Dim("Nothing added."))
					return nil
				}
			default:
				fmt.Fprintln(out, formatter.Dim("Run again with --yes to add these courses."))
				return nil
			}

			added, err := app.Planner.ConfirmDrafts(cmd.Context(), drafts)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Added %d courses\n", len(added))

			conflicts, err := app.Planner.Conflicts(cmd.Context())
			if err != nil {
				return err
			}
			if len(conflicts) > 0 {
				fmt.Fprintln(out, formatter.StyleYellow.Render(
					fmt.Sprintf("Warning: %d schedule conflicts, see 'eduplan conflicts'", len(conflicts))))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Add every extracted course without review")

	return cmd
}

// runExtraction drives the extraction service, showing the progress view on
// a terminal and plain stage lines otherwise.
func runExtraction(cmd *cobra.Command, app *App, path string) ([]domain.CourseDraft, error) {
	if !app.interactive() {
		return app.Extraction.Extract(cmd.Context(), path, stageLineNotifier(cmd.ErrOrStderr()))
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	p := tea.NewProgram(newExtractModel(filepath.Base(path), cancel), tea.WithOutput(cmd.ErrOrStderr()))
	go func() {
		notifier := intelligence.NotifierFunc(func(s intelligence.Stage) { p.Send(stageMsg(s)) })
		drafts, err := app.Extraction.Extract(ctx, path, notifier)
		p.Send(extractDoneMsg{drafts: drafts, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	m := final.(extractModel)
	if m.cancelled {
		return nil, errExtractionCancelled
	}
	return m.drafts, m.err
}

func stageLineNotifier(w io.Writer) intelligence.ProgressNotifier {
	return intelligence.NotifierFunc(func(s intelligence.Stage) {
		fmt.Fprintln(w, formatter.RenderStage(s.Label, s.Percent))
	})
}

// reviewDrafts lets the user select and optionally edit drafts before they
// are added.
func reviewDrafts(drafts []domain.CourseDraft) ([]domain.CourseDraft, error) {
	var selected []int
	var edit bool
	if err := reviewForm(drafts, &selected, &edit).Run(); err != nil {
		return nil, err
	}

	chosen := make([]domain.CourseDraft, 0, len(selected))
	for n, i := range selected {
		d := drafts[i]
		if edit {
			values := formValuesFromDraft(d)
			title := fmt.Sprintf("Course %d of %d", n+1, len(selected))
			if err := courseForm(title, values).Run(); err != nil {
				return nil, err
			}
			d = values.Draft()
		}
		chosen = append(chosen, d)
	}
	return chosen, nil
}
