package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/alexanderramin/eduplan/internal/intelligence"
	"github.com/alexanderramin/eduplan/internal/service"
)

// FormatSummary renders the workload overview box.
func FormatSummary(w intelligence.Workload) string {
	conflicts := StyleGreen.Render("none")
	if w.ConflictsExist {
		conflicts = StyleRed.Render("detected")
	}

	lines := []string{
		fmt.Sprintf("%s %d", Dim("Courses:     "), w.CourseCount),
		fmt.Sprintf("%s %s", Dim("Credits:     "), creditsStyled(w.TotalCredits)),
		fmt.Sprintf("%s %s", Dim("Weekly hours:"), FormatMinutes(w.TotalMinutes)),
		fmt.Sprintf("%s %d", Dim("Active days: "), w.ActiveDays),
		fmt.Sprintf("%s %.1fh", Dim("Avg per day: "), w.AvgHoursPerDay),
		fmt.Sprintf("%s %s", Dim("Conflicts:   "), conflicts),
	}

	if len(w.CoursesByDay) > 0 {
		var days []string
		for d := 0; d < len(domain.DayNames); d++ {
			if n := w.CoursesByDay[d]; n > 0 {
				days = append(days, fmt.Sprintf("%s %d", domain.DayName(d), n))
			}
		}
		lines = append(lines, "", Dim(strings.Join(days, " · ")))
	}

	return RenderBox("Workload", strings.Join(lines, "\n"))
}

func creditsStyled(n int) string {
	text := FormatCredits(n)
	switch {
	case n < intelligence.LowCreditThreshold:
		return StyleYellow.Render(text)
	case n > intelligence.HighCreditThreshold:
		return StyleRed.Render(text)
	default:
		return StyleGreen.Render(text)
	}
}

// FormatConflicts renders overlapping course pairs.
func FormatConflicts(conflicts []service.CourseConflict) string {
	if len(conflicts) == 0 {
		return StyleGreen.Render("✔ No schedule conflicts.") + "\n"
	}
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%d conflicts", len(conflicts))))
	b.WriteString("\n\n")
	for _, c := range conflicts {
		b.WriteString(fmt.Sprintf("  %s %s  %s\n", StyleRed.Render("✖"),
			Bold(c.First.Title), Dim(domain.DayName(c.First.DayOfWeek)+" "+TimeRange(c.First.StartTime, c.First.EndTime))))
		b.WriteString(fmt.Sprintf("    %s %s  %s\n", Dim("overlaps"),
			Bold(c.Second.Title), Dim(TimeRange(c.Second.StartTime, c.Second.EndTime))))
	}
	return b.String()
}
