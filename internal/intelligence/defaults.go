package intelligence

import "github.com/alexanderramin/eduplan/internal/domain"

// DefaultSuggestions is the placeholder set shown before any analysis has
// something to report.
func DefaultSuggestions() []domain.Suggestion {
	return []domain.Suggestion{
		{
			ID:       "welcome-add-courses",
			Type:     domain.SuggestionRecommendation,
			Message:  "Ajoutez vos cours ou importez votre plan de cours pour recevoir des suggestions personnalisées.",
			Priority: domain.PriorityMedium,
		},
		{
			ID:       "welcome-balance",
			Type:     domain.SuggestionOptimization,
			Message:  "Visez environ 30 crédits ECTS par semestre pour une charge équilibrée.",
			Priority: domain.PriorityLow,
		},
		{
			ID:       "welcome-breaks",
			Type:     domain.SuggestionOptimization,
			Message:  "Gardez une demi-journée libre par semaine pour les révisions et les projets de groupe.",
			Priority: domain.PriorityLow,
		},
	}
}
