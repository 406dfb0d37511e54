package export

import (
	"strconv"

	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/gocarina/gocsv"
)

// CSVRow is one course in the CSV export. Credits is empty when absent.
type CSVRow struct {
	ID          string `csv:"id"`
	Title       string `csv:"title"`
	Professor   string `csv:"professor"`
	Location    string `csv:"location"`
	DayOfWeek   int    `csv:"day_of_week"`
	DayName     string `csv:"day_name"`
	StartTime   string `csv:"start_time"`
	EndTime     string `csv:"end_time"`
	Credits     string `csv:"credits"`
	Color       string `csv:"color"`
	Description string `csv:"description"`
}

// CSVRowFromCourse flattens c.
func CSVRowFromCourse(c domain.Course) CSVRow {
	row := CSVRow{
		ID:          c.ID,
		Title:       c.Title,
		Professor:   c.Professor,
		Location:    c.Location,
		DayOfWeek:   c.DayOfWeek,
		DayName:     domain.DayName(c.DayOfWeek),
		StartTime:   c.StartTime,
		EndTime:     c.EndTime,
		Color:       c.Color,
		Description: c.Description,
	}
	if c.Credits != nil {
		row.Credits = strconv.Itoa(*c.Credits)
	}
	return row
}

// CSV renders one row per course with a header line.
func CSV(courses []domain.Course) ([]byte, error) {
	rows := make([]*CSVRow, 0, len(courses))
	for _, c := range courses {
		row := CSVRowFromCourse(c)
		rows = append(rows, &row)
	}
	return gocsv.MarshalBytes(&rows)
}
