package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/alexanderramin/eduplan/internal/export"
	"github.com/gocarina/gocsv"
)

// ParseSnapshot decodes a JSON course snapshot as written by export.Snapshot.
func ParseSnapshot(data []byte) ([]domain.Course, error) {
	var courses []domain.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if courses == nil {
		courses = []domain.Course{}
	}
	return courses, nil
}

// LoadSnapshot reads and parses a JSON course snapshot file.
func LoadSnapshot(path string) ([]domain.Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSnapshot(data)
}

// ParseCSV decodes the CSV export. Unknown columns are ignored and an empty
// credits cell means no credits.
func ParseCSV(data []byte) ([]domain.Course, error) {
	var rows []*export.CSVRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}

	courses := make([]domain.Course, 0, len(rows))
	for i, row := range rows {
		c, err := courseFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("csv row %d: %w", i+1, err)
		}
		courses = append(courses, c)
	}
	return courses, nil
}

func courseFromRow(row *export.CSVRow) (domain.Course, error) {
	c := domain.Course{
		ID:          strings.TrimSpace(row.ID),
		Title:       row.Title,
		Professor:   row.Professor,
		Location:    row.Location,
		StartTime:   row.StartTime,
		EndTime:     row.EndTime,
		DayOfWeek:   row.DayOfWeek,
		Color:       row.Color,
		Description: row.Description,
	}
	if s := strings.TrimSpace(row.Credits); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return domain.Course{}, fmt.Errorf("credits: invalid number %q", row.Credits)
		}
		c.Credits = &n
	}
	return c, nil
}

// LoadFile reads a course file, choosing the parser from the extension.
// Files without a .csv extension are read as JSON snapshots.
func LoadFile(path string) ([]domain.Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return ParseCSV(data)
	}
	return ParseSnapshot(data)
}
