package domain

// Suggestion is an advisory message produced by the heuristic engine.
// Courses holds ids of the referenced courses; it never owns them.
type Suggestion struct {
	ID       string         `json:"id"`
	Type     SuggestionType `json:"type"`
	Message  string         `json:"message"`
	Courses  []string       `json:"courses,omitempty"`
	Priority Priority       `json:"priority"`
}
