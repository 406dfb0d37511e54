package export

import (
	"bytes"
	"fmt"

	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/alexanderramin/eduplan/internal/scheduler"
	"github.com/tealeg/xlsx/v3"
)

// Sheet names of the spreadsheet export.
const (
	SheetCourses = "Cours"
	SheetWeek    = "Semaine"
)

var courseSheetHeader = []string{"Titre", "Professeur", "Salle", "Jour", "Début", "Fin", "Crédits", "Description"}

// Spreadsheet renders a workbook with the course list and the Monday–Friday
// week grid.
func Spreadsheet(courses []domain.Course) ([]byte, error) {
	f := xlsx.NewFile()

	list, err := f.AddSheet(SheetCourses)
	if err != nil {
		return nil, fmt.Errorf("adding %s sheet: %w", SheetCourses, err)
	}
	addStringRow(list, courseSheetHeader...)
	for _, c := range courses {
		row := list.AddRow()
		for _, v := range []string{c.Title, c.Professor, c.Location, domain.DayName(c.DayOfWeek), c.StartTime, c.EndTime} {
			row.AddCell().SetString(v)
		}
		row.AddCell().SetInt(c.CreditValue())
		row.AddCell().SetString(c.Description)
	}

	week, err := f.AddSheet(SheetWeek)
	if err != nil {
		return nil, fmt.Errorf("adding %s sheet: %w", SheetWeek, err)
	}
	grid := scheduler.BuildWeekGrid(courses)
	header := []string{"Heure"}
	for _, d := range grid.Days() {
		header = append(header, domain.DayName(d))
	}
	addStringRow(week, header...)
	for i, cells := range grid.Rows {
		row := week.AddRow()
		row.AddCell().SetString(fmt.Sprintf("%02d:00", scheduler.GridFirstHour+i))
		for _, cell := range cells {
			label := ""
			if cell.Course != nil {
				label = cell.Course.Title
			}
			row.AddCell().SetString(label)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func addStringRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}
