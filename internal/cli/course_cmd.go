package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/eduplan/internal/cli/formatter"
	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/alexanderramin/eduplan/internal/scheduler"
	"github.com/spf13/cobra"
)

// resolveCourseID resolves a full id or an unambiguous id prefix.
func resolveCourseID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("course ID is required")
	}

	courses, err := app.Planner.ListCourses(ctx)
	if err != nil {
		return "", err
	}

	for _, c := range courses {
		if c.ID == input {
			return c.ID, nil
		}
	}

	var matches []string
	for _, c := range courses {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("course %q: %w", input, domain.ErrCourseNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("course ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "course",
		Aliases: []string{"courses"},
		Short:   "Manage courses",
	}

	cmd.AddCommand(
		newCourseAddCmd(app),
		newCourseListCmd(app),
		newCourseRemoveCmd(app),
	)

	return cmd
}

var courseFlagNames = []string{
	"title", "professor", "location", "day", "start", "end",
	"credits", "no-credits", "color", "description",
}

// anyChanged reports whether any of the named flags was set on the command line.
func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func newCourseAddCmd(app *App) *cobra.Command {
	var title, professor, location, start, end, color, description string
	var credits int
	var noCredits bool
	day := newDayFlag(domain.DefaultDayOfWeek)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a weekly course",
		Long: "Add a weekly course. Without flags on a terminal an interactive form is shown;\n" +
			"otherwise --title, --professor, --location, --start and --end are required.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var draft domain.CourseDraft
			if !anyChanged(cmd, courseFlagNames...) && app.interactive() {
				values := formValuesFromDraft(domain.NewCourseDraft())
				if err := courseForm("New course", values).Run(); err != nil {
					return err
				}
				draft = values.Draft()
			} else {
				var missing []string
				for _, name := range []string{"title", "professor", "location", "start", "end"} {
					if !cmd.Flags().Changed(name) {
						missing = append(missing, `"`+name+`"`)
					}
				}
				if len(missing) > 0 {
					return fmt.Errorf("required flag(s) %s not set", strings.Join(missing, ", "))
				}
				draft = domain.CourseDraft{
					Title:       strings.TrimSpace(title),
					Professor:   strings.TrimSpace(professor),
					Location:    strings.TrimSpace(location),
					StartTime:   normalizeClock(start),
					EndTime:     normalizeClock(end),
					DayOfWeek:   day.day,
					Color:       color,
					Description: strings.TrimSpace(description),
				}
				if !noCredits {
					draft.Credits = domain.IntPtr(credits)
				}
			}

			c, err := app.Planner.AddCourse(cmd.Context(), draft)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Added %s %s\n", formatter.StyleGreen.Render(c.Title), formatter.Dim("("+formatter.TruncID(c.ID)+")"))
			fmt.Fprintln(out, formatter.FormatCourse(*c))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Course title")
	cmd.Flags().StringVar(&professor, "professor", "", "Professor name")
	cmd.Flags().StringVar(&location, "location", "", "Room or building")
	cmd.Flags().Var(day, "day", "Day of week (0-6 or name, e.g. lundi, tue)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().IntVar(&credits, "credits", domain.DefaultCredits, "ECTS credits")
	cmd.Flags().BoolVar(&noCredits, "no-credits", false, "Leave credits unset")
	cmd.Flags().StringVar(&color, "color", domain.DefaultColor, "Display colour (#rrggbb)")
	cmd.Flags().StringVar(&description, "description", "", "Optional description")
	cmd.MarkFlagsMutuallyExclusive("credits", "no-credits")

	return cmd
}

func newCourseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := app.Planner.ListCourses(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCourseList(scheduler.Sorted(courses)))
			return nil
		},
	}
}

func newCourseRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Remove a course by id or id prefix",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveCourseID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if !yes && app.interactive() {
				confirmed := true
				if err := wizardConfirm(fmt.Sprintf("Remove course %s?", formatter.TruncID(id)), &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			removed, err := app.Planner.RemoveCourse(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s %s\n", removed.Title, formatter.Dim("("+formatter.TruncID(removed.ID)+")"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip confirmation")

	return cmd
}
