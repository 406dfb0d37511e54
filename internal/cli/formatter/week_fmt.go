package formatter

import (
	"fmt"

	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/alexanderramin/eduplan/internal/scheduler"
	"github.com/charmbracelet/lipgloss"
)

const weekCellWidth = 16

// FormatWeek renders the Monday–Friday hourly grid. The hour a course starts
// shows its title; later hours it covers show a continuation mark.
func FormatWeek(grid scheduler.WeekGrid) string {
	headers := []string{"HOUR"}
	for _, d := range grid.Days() {
		headers = append(headers, domain.DayName(d))
	}

	rows := make([][]string, 0, len(grid.Rows))
	for i, cells := range grid.Rows {
		row := []string{Dim(fmt.Sprintf("%02d:00", scheduler.GridFirstHour+i))}
		for _, cell := range cells {
			row = append(row, weekCell(cell))
		}
		rows = append(rows, row)
	}
	return RenderTable(headers, rows)
}

func weekCell(cell scheduler.GridCell) string {
	if cell.Course == nil {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(cell.Course.Color))
	if cell.Course.Color == "" {
		style = StyleFg
	}
	if cell.Starts {
		return style.Render(Truncate(cell.Course.Title, weekCellWidth))
	}
	return style.Render("┆")
}
