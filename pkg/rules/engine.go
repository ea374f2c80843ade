package rules

import (
	"log/slog"

	"github.com/fbruhn/datakompass/internal/logging"
	"github.com/fbruhn/datakompass/pkg/answers"
)

// Engine evaluates a fixed rule table against an answer store.
type Engine struct {
	rules  []Rule
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a structured logger for rule evaluation events.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithRules replaces the builtin rule table.
func WithRules(rules []Rule) Option {
	return func(e *Engine) { e.rules = rules }
}

// NewEngine creates a rule engine over the builtin table.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		rules:  Builtin(),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Rules returns the engine's rule table in evaluation order.
func (e *Engine) Rules() []Rule { return e.rules }

// Evaluate runs every rule against the answers and returns the
// suggestions of the applicable ones, in table order. Table order is the
// presentation order, not a priority scheme. Evaluation is total: a rule
// whose condition or template panics is logged and skipped, the
// remaining rules still run. Re-evaluating unchanged answers yields an
// identical sequence.
func (e *Engine) Evaluate(ans *answers.Store) []Suggestion {
	var out []Suggestion
	for _, rule := range e.rules {
		if s, ok := e.evaluateOne(rule, ans); ok {
			out = append(out, s)
		}
	}
	return out
}

func (e *Engine) evaluateOne(rule Rule, ans *answers.Store) (s Suggestion, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("rule evaluation panicked, skipping rule",
				"rule", rule.ID,
				"panic", r,
			)
			ok = false
		}
	}()

	if rule.When == nil || !rule.When(ans) {
		return Suggestion{}, false
	}

	recs := make([]string, 0, len(rule.Recommendations))
	for _, rec := range rule.Recommendations {
		recs = append(recs, rec(ans))
	}
	return Suggestion{
		ID:              rule.ID,
		Title:           rule.Title,
		Description:     rule.Description,
		Recommendations: recs,
	}, true
}
