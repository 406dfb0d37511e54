package intelligence

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/eduplan/internal/domain"
	"github.com/alexanderramin/eduplan/internal/scheduler"
)

// Credit-load thresholds, in ECTS.
const (
	LowCreditThreshold  = 20
	TargetCredits       = 30
	HighCreditThreshold = 35
)

// BusyDayCourseMinimum is the course count from which a day is reported as busy.
const BusyDayCourseMinimum = 4

// Stable ids of the single-shot suggestions.
const (
	SuggestionIDCreditLow = "credits-low"
	SuggestionIDCreditHi  = "credits-high"
	SuggestionIDCreditOK  = "credits-good"
	SuggestionIDFreeDay   = "friday-free"
)

// Engine produces heuristic suggestions for a course list. It keeps no state
// between calls; Defaults is returned whenever the heuristics have nothing to
// say about the input.
type Engine struct {
	Defaults []domain.Suggestion
}

// NewEngine returns an Engine that falls back to DefaultSuggestions.
func NewEngine() *Engine {
	return &Engine{Defaults: DefaultSuggestions()}
}

// GenerateSuggestions runs the default engine over courses.
func GenerateSuggestions(courses []domain.Course) []domain.Suggestion {
	return NewEngine().Generate(courses)
}

// Generate runs the conflict, credit-load, free-day and busy-day checks in
// that order. An empty course list, or a run where no check fires, yields a
// copy of e.Defaults.
func (e *Engine) Generate(courses []domain.Course) []domain.Suggestion {
	if len(courses) == 0 {
		return e.defaults()
	}

	var out []domain.Suggestion
	out = append(out, conflictSuggestions(courses)...)
	out = append(out, creditLoadSuggestion(courses))
	out = append(out, freeDaySuggestions(courses)...)
	out = append(out, busyDaySuggestions(courses)...)

	if len(out) == 0 {
		return e.defaults()
	}
	return out
}

func (e *Engine) defaults() []domain.Suggestion {
	out := make([]domain.Suggestion, len(e.Defaults))
	for i, s := range e.Defaults {
		s.Courses = append([]string(nil), s.Courses...)
		out[i] = s
	}
	return out
}

func conflictSuggestions(courses []domain.Course) []domain.Suggestion {
	conflicts := scheduler.DetectConflicts(courses)
	out := make([]domain.Suggestion, 0, len(conflicts))
	for _, c := range conflicts {
		a, b := courses[c.I], courses[c.J]
		out = append(out, domain.Suggestion{
			ID:       fmt.Sprintf("conflict-%d-%d", c.I, c.J),
			Type:     domain.SuggestionConflict,
			Message:  fmt.Sprintf("Conflit détecté entre %q et %q", a.Title, b.Title),
			Courses:  []string{a.ID, b.ID},
			Priority: domain.PriorityHigh,
		})
	}
	return out
}

// TotalCredits sums course credits, counting absent values as zero.
func TotalCredits(courses []domain.Course) int {
	total := 0
	for _, c := range courses {
		total += c.CreditValue()
	}
	return total
}

func creditLoadSuggestion(courses []domain.Course) domain.Suggestion {
	total := TotalCredits(courses)
	switch {
	case total < LowCreditThreshold:
		return domain.Suggestion{
			ID:       SuggestionIDCreditLow,
			Type:     domain.SuggestionRecommendation,
			Message:  fmt.Sprintf("Vous avez %d crédits. Pensez à ajouter des cours pour atteindre %d crédits recommandés.", total, TargetCredits),
			Priority: domain.PriorityMedium,
		}
	case total > HighCreditThreshold:
		return domain.Suggestion{
			ID:       SuggestionIDCreditHi,
			Type:     domain.SuggestionRecommendation,
			Message:  fmt.Sprintf("Attention : %d crédits peut être une charge trop importante. Considérez alléger votre programme.", total),
			Priority: domain.PriorityHigh,
		}
	default:
		return domain.Suggestion{
			ID:       SuggestionIDCreditOK,
			Type:     domain.SuggestionOptimization,
			Message:  fmt.Sprintf("Excellent ! %d crédits est une charge équilibrée pour ce semestre.", total),
			Priority: domain.PriorityLow,
		}
	}
}

// Only Friday is checked; other empty weekdays are not reported.
func freeDaySuggestions(courses []domain.Course) []domain.Suggestion {
	for _, c := range courses {
		if c.DayOfWeek == domain.Friday {
			return nil
		}
	}
	return []domain.Suggestion{{
		ID:       SuggestionIDFreeDay,
		Type:     domain.SuggestionOptimization,
		Message:  fmt.Sprintf("%s est libre - parfait pour les projets de groupe et révisions !", domain.DayName(domain.Friday)),
		Priority: domain.PriorityLow,
	}}
}

// CoursesPerDay counts courses by day index.
func CoursesPerDay(courses []domain.Course) map[int]int {
	counts := make(map[int]int)
	for _, c := range courses {
		counts[c.DayOfWeek]++
	}
	return counts
}

func busyDaySuggestions(courses []domain.Course) []domain.Suggestion {
	counts := CoursesPerDay(courses)
	days := make([]int, 0, len(counts))
	for d := range counts {
		days = append(days, d)
	}
	sort.Ints(days)

	var out []domain.Suggestion
	for _, d := range days {
		n := counts[d]
		if n < BusyDayCourseMinimum {
			continue
		}
		out = append(out, domain.Suggestion{
			ID:       fmt.Sprintf("busy-day-%d", d),
			Type:     domain.SuggestionRecommendation,
			Message:  fmt.Sprintf("%s a %d cours. Prévoyez des pauses régulières.", domain.DayName(d), n),
			Priority: domain.PriorityMedium,
		})
	}
	return out
}
