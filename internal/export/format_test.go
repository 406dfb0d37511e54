package export

import (
	"testing"

	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/alexanderramin/eduplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"ics", FormatICS, false},
		{"ICS", FormatICS, false},
		{".json", FormatJSON, false},
		{" csv ", FormatCSV, false},
		{"xlsx", FormatXLSX, false},
		{"pdf", "", true},
		{"", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFormat(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatNames(t *testing.T) {
	assert.Equal(t, []string{"csv", "ics", "json", "xlsx"}, FormatNames())
}

func TestExporter_Render(t *testing.T) {
	courses := []domain.Course{testutil.NewTestCourse("Algo")}
	e := NewExporter(WithNow(fixedNow(t)), WithLocation(paris(t)))

	tests := []struct {
		format       Format
		wantFilename string
		wantMedia    string
	}{
		{FormatICS, "emploi-du-temps.ics", "text/calendar;charset=utf-8"},
		{FormatJSON, "emploi-du-temps.json", "application/json"},
		{FormatCSV, "emploi-du-temps.csv", "text/csv;charset=utf-8"},
		{FormatXLSX, "emploi-du-temps.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	}

	for _, tc := range tests {
		t.Run(string(tc.format), func(t *testing.T) {
			doc, err := e.Render(tc.format, courses)
			require.NoError(t, err)
			assert.Equal(t, tc.format, doc.Format)
			assert.Equal(t, tc.wantFilename, doc.Filename)
			assert.Equal(t, tc.wantMedia, doc.MediaType)
			assert.NotEmpty(t, doc.Body)
		})
	}
}

func TestExporter_RenderUnknown(t *testing.T) {
	_, err := NewExporter().Render(Format("pdf"), nil)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
