package scheduler

import (
	"github.com/alexanderramin/eduplan/internal/domain"
)

// Week grid bounds: Monday to Friday, 08:00 to 20:00 inclusive.
const (
	GridFirstDay  = 1
	GridLastDay   = 5
	GridFirstHour = 8
	GridLastHour  = 20
)

// GridCell is one hour on one day of the week grid.
type GridCell struct {
	Day  int
	Hour int
	// Course is the first course covering this hour, nil when free.
	Course *domain.Course
	// Starts is true when Course begins in this hour.
	Starts bool
}

// WeekGrid is indexed as Rows[hour-GridFirstHour][day-GridFirstDay].
type WeekGrid struct {
	Rows [][]GridCell
}

// Days returns the weekday indices shown as grid columns.
func (g WeekGrid) Days() []int {
	days := make([]int, 0, GridLastDay-GridFirstDay+1)
	for d := GridFirstDay; d <= GridLastDay; d++ {
		days = append(days, d)
	}
	return days
}

// BuildWeekGrid places courses on the Monday–Friday hourly grid. A course
// covers every hour h with start hour <= h < end hour. When several courses
// cover the same cell the first one in input order wins; weekend courses and
// courses with unparsable times are not shown.
func BuildWeekGrid(courses []domain.Course) WeekGrid {
	spans := make([]hourSpan, len(courses))
	for i, c := range courses {
		spans[i] = spanOf(c)
	}

	rows := make([][]GridCell, 0, GridLastHour-GridFirstHour+1)
	for hour := GridFirstHour; hour <= GridLastHour; hour++ {
		row := make([]GridCell, 0, GridLastDay-GridFirstDay+1)
		for day := GridFirstDay; day <= GridLastDay; day++ {
			cell := GridCell{Day: day, Hour: hour}
			for i := range courses {
				s := spans[i]
				if s.ok && s.day == day && s.start <= hour && hour < s.end {
					cell.Course = &courses[i]
					cell.Starts = s.start == hour
					break
				}
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	return WeekGrid{Rows: rows}
}

// Cell returns the cell for day and hour, and false when outside the grid.
func (g WeekGrid) Cell(day, hour int) (GridCell, bool) {
	r, c := hour-GridFirstHour, day-GridFirstDay
	if r < 0 || r >= len(g.Rows) || c < 0 || c >= len(g.Rows[r]) {
		return GridCell{}, false
	}
	return g.Rows[r][c], true
}
