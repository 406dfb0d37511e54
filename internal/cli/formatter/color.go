package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PriorityStyle returns the lipgloss style for a suggestion priority.
func PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityHigh:
		return StyleRed
	case domain.PriorityMedium:
		return StyleYellow
	case domain.PriorityLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// PriorityBadge returns a colored priority indicator such as "● HIGH".
func PriorityBadge(p domain.Priority) string {
	label := strings.ToUpper(string(p))
	if label == "" {
		label = "UNKNOWN"
	}
	return PriorityStyle(p).Render("● " + label)
}

// SuggestionIcon returns the glyph shown before a suggestion of type t.
func SuggestionIcon(t domain.SuggestionType) string {
	switch t {
	case domain.SuggestionConflict:
		return StyleRed.Render("✖")
	case domain.SuggestionRecommendation:
		return StyleYellow.Render("➜")
	case domain.SuggestionOptimization:
		return StyleBlue.Render("✦")
	default:
		return StyleDim.Render("•")
	}
}

// Swatch renders a block in the course display colour.
func Swatch(color string) string {
	if color == "" {
		return StyleDim.Render("■")
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
