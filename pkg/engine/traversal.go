package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/fbruhn/datakompass/internal/logging"
	"github.com/fbruhn/datakompass/pkg/answers"
	"github.com/fbruhn/datakompass/pkg/catalog"
	"github.com/fbruhn/datakompass/pkg/domain"
)

// Traversal drives progression through the catalog for one session.
// It owns all mutation of the session state; the rule engine and the
// presentation layers only ever read from it.
type Traversal struct {
	catalog   *catalog.Catalog
	state     *domain.State
	evaluator *Evaluator
	logger    *slog.Logger
}

// Option configures a Traversal.
type Option func(*Traversal)

// WithLogger sets a structured logger for traversal events.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Traversal) {
		t.logger = logger
		t.evaluator = NewEvaluator(logger)
	}
}

// NewTraversal creates a traversal over an existing session state.
// If the state starts on an inapplicable section, it is skipped
// immediately, same as after any navigation.
func NewTraversal(cat *catalog.Catalog, state *domain.State, opts ...Option) *Traversal {
	t := &Traversal{
		catalog:   cat,
		state:     state,
		logger:    logging.NewNop(),
		evaluator: NewEvaluator(nil),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.skipInapplicable()
	return t
}

// State returns the session state owned by this traversal.
func (t *Traversal) State() *domain.State { return t.state }

// Answers returns the answer store view over the session.
func (t *Traversal) Answers() *answers.Store { return answers.Wrap(t.state.Answers) }

// Evaluator returns the condition evaluator used by this traversal.
func (t *Traversal) Evaluator() *Evaluator { return t.evaluator }

// Completed reports whether the questionnaire has been finished.
func (t *Traversal) Completed() bool { return t.state.Completed }

// Progress returns the 1-based current position and the catalog length.
func (t *Traversal) Progress() (current, total int) {
	return t.state.CurrentIndex + 1, t.catalog.Len()
}

// Current returns the active catalog node. The second result is false
// once the questionnaire is completed.
func (t *Traversal) Current() (domain.Question, bool) {
	if t.state.Completed || t.state.CurrentIndex >= t.catalog.Len() {
		return domain.Question{}, false
	}
	return t.catalog.At(t.state.CurrentIndex), true
}

// Answer records a value for a resolved question id. Values pass shape
// sanitization, so adapters can hand user input through directly.
func (t *Traversal) Answer(id string, value any) error {
	clean, err := answers.Sanitize(map[string]any{id: value})
	if err != nil {
		return err
	}
	t.state.Answers[id] = clean[id]
	t.state.UpdatedAt = time.Now()
	return nil
}

// Advance moves to the next catalog node if the current one is fully
// answered; on the last node it marks the session completed. Chained
// inapplicable sections after the new position are skipped silently.
func (t *Traversal) Advance() error {
	current, ok := t.Current()
	if !ok {
		return nil
	}
	if !t.evaluator.IsAnswered(current, t.Answers()) {
		return fmt.Errorf("%w: %s", domain.ErrNotAnswered, current.ID)
	}

	if t.state.CurrentIndex >= t.catalog.Len()-1 {
		t.state.Completed = true
		t.state.UpdatedAt = time.Now()
		t.logger.Info("questionnaire completed", "session", t.state.SessionID)
		return nil
	}

	t.state.CurrentIndex++
	t.state.UpdatedAt = time.Now()
	t.skipInapplicable()
	return nil
}

// Retreat moves one node back; it is a no-op at the first node.
// Moving back onto an inapplicable section keeps retreating.
func (t *Traversal) Retreat() {
	if t.state.Completed || t.state.CurrentIndex == 0 {
		return
	}
	t.state.CurrentIndex--
	t.state.UpdatedAt = time.Now()
	for t.state.CurrentIndex > 0 && t.inapplicable(t.catalog.At(t.state.CurrentIndex)) {
		t.state.CurrentIndex--
	}
}

// EditAt returns the node at a catalog index for post-completion editing.
// It never changes the current index or the completed flag.
func (t *Traversal) EditAt(index int) (domain.Question, error) {
	if index < 0 || index >= t.catalog.Len() {
		return domain.Question{}, fmt.Errorf("question index %d out of range [0,%d)", index, t.catalog.Len())
	}
	return t.catalog.At(index), nil
}

// skipInapplicable advances past sections whose top-level condition
// evaluates false. The check repeats after every auto-advance so a chain
// of inapplicable sections is skipped in one pass before control returns
// to the caller. The skip is one index at a time and stops at the last
// node: completion always requires an explicit Advance.
func (t *Traversal) skipInapplicable() {
	for t.state.CurrentIndex < t.catalog.Len()-1 {
		node := t.catalog.At(t.state.CurrentIndex)
		if !t.inapplicable(node) {
			return
		}
		t.logger.Debug("skipping inapplicable section", "section", node.ID)
		t.state.CurrentIndex++
	}
}

func (t *Traversal) inapplicable(q domain.Question) bool {
	return q.IsSection() && !t.evaluator.ShouldShow(q, t.Answers())
}
