package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/eduplan/internal/domain"
)

var courseHeaders = []string{"ID", "DAY", "TIME", "TITLE", "PROFESSOR", "ROOM", "CREDITS"}

// FormatCourseList renders the active courses as a table.
func FormatCourseList(courses []domain.Course) string {
	if len(courses) == 0 {
		return Dim("No courses yet. Add one with 'eduplan course add' or 'eduplan extract FILE'.") + "\n"
	}
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{
			Swatch(c.Color) + " " + TruncID(c.ID),
			domain.DayName(c.DayOfWeek),
			TimeRange(c.StartTime, c.EndTime),
			Truncate(c.Title, 32),
			Truncate(c.Professor, 24),
			Truncate(c.Location, 16),
			creditsCell(c.Credits),
		})
	}
	return RenderTable(courseHeaders, rows)
}

// FormatCourse renders a single course on one line.
func FormatCourse(c domain.Course) string {
	return fmt.Sprintf("%s %s  %s %s  %s",
		Swatch(c.Color), Bold(c.Title),
		domain.DayName(c.DayOfWeek), TimeRange(c.StartTime, c.EndTime),
		Dim(c.Professor+" · "+c.Location))
}

// TimeRange renders "09:00–11:00".
func TimeRange(start, end string) string {
	return start + "–" + end
}

func creditsCell(credits *int) string {
	if credits == nil {
		return Dim("--")
	}
	return strconv.Itoa(*credits)
}

// FormatDrafts renders extracted drafts awaiting review, numbered from 1.
func FormatDrafts(drafts []domain.CourseDraft) string {
	if len(drafts) == 0 {
		return Dim("No course found in the document.") + "\n"
	}
	headers := []string{"#", "DAY", "TIME", "TITLE", "PROFESSOR", "ROOM", "CREDITS"}
	rows := make([][]string, 0, len(drafts))
	for i, d := range drafts {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			domain.DayName(d.DayOfWeek),
			TimeRange(d.StartTime, d.EndTime),
			Swatch(d.Color) + " " + Truncate(d.Title, 32),
			Truncate(d.Professor, 24),
			Truncate(d.Location, 16),
			creditsCell(d.Credits),
		})
	}
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%d courses found", len(drafts))))
	b.WriteString("\n\n")
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}
