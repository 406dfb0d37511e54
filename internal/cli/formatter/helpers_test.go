package formatter

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Algo", 10, "Algo"},
		{"Algorithmique", 6, "Algor…"},
		{"Données", 7, "Données"},
		{"Données", 4, "Don…"},
		{"abc", 1, "…"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.width))
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "2h", FormatMinutes(120))
	assert.Equal(t, "3h 30m", FormatMinutes(210))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"A", "LONG HEADER"},
		[][]string{{"wide cell", "x"}, {StyleRed.Render("y"), "z"}},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 4)
	assert.Equal(t, "A          LONG HEADER", lines[0])
	assert.Equal(t, "─────────  ───────────", lines[1])
	assert.Equal(t, "wide cell  x", lines[2])
	assert.Equal(t, "y          z", lines[3])
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, [][]string{{"a"}}))
}

func TestRenderProgress(t *testing.T) {
	assert.Equal(t, "[█████░░░░░]  50%", stripANSI(RenderProgress(0.5, 10)))
	assert.Equal(t, "[██████████] 100%", stripANSI(RenderProgress(1.5, 10)))
	assert.Equal(t, "[░░]   0%", stripANSI(RenderProgress(-1, 1)))
}

func TestRenderStage(t *testing.T) {
	out := stripANSI(RenderStage("Lecture du document", 20))
	assert.True(t, strings.HasSuffix(out, " 20% Lecture du document"), out)
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "CRÉDITS\n───────", stripANSI(Header("Crédits")))
}
