package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/eduplan/internal/domain"
)

// FormatSuggestions renders the suggestion list in engine order.
func FormatSuggestions(suggestions []domain.Suggestion) string {
	var b strings.Builder
	b.WriteString(Header("Suggestions"))
	b.WriteString("\n\n")
	for _, s := range suggestions {
		b.WriteString(fmt.Sprintf("  %s %s\n", SuggestionIcon(s.Type), s.Message))
		b.WriteString(fmt.Sprintf("    %s %s\n", PriorityBadge(s.Priority), Dim(string(s.Type))))
	}
	return b.String()
}
