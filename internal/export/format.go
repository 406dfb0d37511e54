package export

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/eduplan/internal/domain"
)

// ErrUnknownFormat indicates an export format name that is not registered.
var ErrUnknownFormat = errors.New("unknown export format")

// BaseFilename is the file name, without extension, offered for every export.
const BaseFilename = "emploi-du-temps"

type Format string

const (
	FormatICS  Format = "ics"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FormatInfo describes how an export is saved by the host.
type FormatInfo struct {
	Format    Format
	Extension string
	MediaType string
}

// Formats lists every supported export.
var Formats = map[Format]FormatInfo{
	FormatICS:  {FormatICS, ".ics", "text/calendar;charset=utf-8"},
	FormatJSON: {FormatJSON, ".json", "application/json"},
	FormatCSV:  {FormatCSV, ".csv", "text/csv;charset=utf-8"},
	FormatXLSX: {FormatXLSX, ".xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
}

// FormatNames returns the registered format names in lexical order.
func FormatNames() []string {
	names := make([]string, 0, len(Formats))
	for f := range Formats {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// ParseFormat resolves a case-insensitive format name, with or without a
// leading dot.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "."))
	if _, ok := Formats[f]; !ok {
		return "", fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownFormat, s, strings.Join(FormatNames(), ", "))
	}
	return f, nil
}

// Document is a rendered export ready to be saved by the host.
type Document struct {
	Format    Format
	Filename  string
	MediaType string
	Body      []byte
}

// Exporter renders course lists into any registered format.
type Exporter struct {
	calendarOpts []CalendarOption
}

// NewExporter returns an Exporter; opts apply to calendar exports.
func NewExporter(opts ...CalendarOption) *Exporter {
	return &Exporter{calendarOpts: opts}
}

// Render serialises courses in format f.
func (e *Exporter) Render(f Format, courses []domain.Course) (*Document, error) {
	info, ok := Formats[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	var body []byte
	var err error
	switch f {
	case FormatICS:
		body = []byte(Calendar(courses, e.calendarOpts...))
	case FormatJSON:
		body, err = Snapshot(courses)
	case FormatCSV:
		body, err = CSV(courses)
	case FormatXLSX:
		body, err = Spreadsheet(courses)
	}
	if err != nil {
		return nil, fmt.Errorf("rendering %s export: %w", f, err)
	}

	return &Document{
		Format:    f,
		Filename:  BaseFilename + info.Extension,
		MediaType: info.MediaType,
		Body:      body,
	}, nil
}
