package domain

type SuggestionType string

const (
	SuggestionConflict       SuggestionType = "conflict"
	SuggestionRecommendation SuggestionType = "recommendation"
	SuggestionOptimization   SuggestionType = "optimization"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Form defaults for a new course.
const (
	DefaultDayOfWeek = 1
	DefaultCredits   = 3
	DefaultColor     = "#3b82f6"
)

// PaletteColor is a named display colour offered by the course form.
type PaletteColor struct {
	Name  string
	Value string
}

// Palette lists the colours offered by the course form. Course.Color is not
// validated against it.
var Palette = []PaletteColor{
	{Name: "Bleu", Value: "#3b82f6"},
	{Name: "Vert", Value: "#10b981"},
	{Name: "Violet", Value: "#8b5cf6"},
	{Name: "Orange", Value: "#f59e0b"},
	{Name: "Rouge", Value: "#ef4444"},
	{Name: "Rose", Value: "#ec4899"},
	{Name: "Cyan", Value: "#06b6d4"},
}
