package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/eduplan/internal/cli/formatter"
	"github.com/alexanderramin/eduplan/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	format := &formatFlag{format: export.FormatICS}
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the timetable as a calendar, snapshot or spreadsheet",
		Long: "Export the timetable. Formats: " + strings.Join(export.FormatNames(), ", ") + ".\n" +
			"The file defaults to emploi-du-temps.<ext> in the current directory; use --out - for stdout.",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.Planner.Export(cmd.Context(), format.format)
			if err != nil {
				return err
			}

			if out == "-" {
				_, err := cmd.OutOrStdout().Write(doc.Body)
				return err
			}

			path := out
			if path == "" {
				path = doc.Filename
			}
			if err := os.WriteFile(path, doc.Body, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s %s\n",
				formatter.StyleGreen.Render(path),
				formatter.Dim(fmt.Sprintf("(%s, %d bytes)", doc.MediaType, len(doc.Body))))
			return nil
		},
	}

	cmd.Flags().VarP(format, "format", "f", "Export format ("+strings.Join(export.FormatNames(), "|")+")")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (- for stdout)")

	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import courses from a JSON snapshot or CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if replace && app.interactive() {
				confirmed := false
				if err := wizardConfirm("Replace all current courses?", &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
					return nil
				}
			}

			result, err := app.Planner.Import(ctx, args[0], replace)
			if err != nil {
				return err
			}

			verb := "Merged"
			if result.Replaced {
				verb = "Replaced timetable with"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d courses (%d total)\n", verb, result.Imported, result.Total)
			if result.Renumbered > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim(fmt.Sprintf("%d duplicate ids were reassigned.", result.Renumbered)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "Replace the current courses instead of merging")

	return cmd
}
