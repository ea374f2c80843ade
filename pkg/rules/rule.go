package rules

import "github.com/fbruhn/datakompass/pkg/answers"

// Recommendation materializes one advisory line from the answers.
// Most recommendations are static text; Static wraps those. Templated
// recommendations interpolate a prior answer at evaluation time.
type Recommendation func(ans *answers.Store) string

// Static wraps a literal recommendation string.
func Static(text string) Recommendation {
	return func(*answers.Store) string { return text }
}

// Rule is one declarative condition over the answer store together with
// the advisory output produced when it applies. Conditions are pure
// reads; a rule never mutates the store.
type Rule struct {
	ID              string
	Title           string
	Description     string
	When            func(ans *answers.Store) bool
	Recommendations []Recommendation
}

// Suggestion is the materialized output of one applicable rule.
type Suggestion struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
}
