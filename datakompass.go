package datakompass

import (
	"io"
	"log/slog"

	"github.com/fbruhn/datakompass/internal/i18n"
	"github.com/fbruhn/datakompass/internal/logging"
	"github.com/fbruhn/datakompass/internal/presentation/graph"
	"github.com/fbruhn/datakompass/pkg/catalog"
	"github.com/fbruhn/datakompass/pkg/domain"
	"github.com/fbruhn/datakompass/pkg/engine"
	"github.com/fbruhn/datakompass/pkg/rules"
	"github.com/fbruhn/datakompass/pkg/session"
)

// Version is the library version, stamped into binaries and adapters.
const Version = "0.1.0"

// Assessment is the high-level entry point for the library. It bundles a
// catalog, one session state, and the traversal and rule engines behind
// a simplified API for consumers that do not need the individual parts.
type Assessment struct {
	catalog   *catalog.Catalog
	state     *domain.State
	traversal *engine.Traversal
	rules     *rules.Engine
	logger    *slog.Logger
}

// Option defines a functional option for configuring an Assessment.
type Option func(*Assessment)

// WithCatalog replaces the builtin question catalog.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(a *Assessment) {
		a.catalog = cat
	}
}

// WithRules replaces the builtin recommendation rules.
func WithRules(table []rules.Rule) Option {
	return func(a *Assessment) {
		a.rules = rules.NewEngine(rules.WithRules(table), rules.WithLogger(a.logger))
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Assessment) {
		a.logger = logger
	}
}

// WithState resumes an existing session state instead of starting fresh.
func WithState(state *domain.State) Option {
	return func(a *Assessment) {
		a.state = state
	}
}

// New creates an assessment session over the builtin catalog and rules
// unless overridden by options.
func New(sessionID, language string, opts ...Option) *Assessment {
	if language == "" {
		language = i18n.DefaultLanguage
	}
	a := &Assessment{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(a)
	}
	if a.catalog == nil {
		a.catalog = catalog.Builtin()
	}
	if a.state == nil {
		a.state = domain.NewState(sessionID, language)
	}
	if a.rules == nil {
		a.rules = rules.NewEngine(rules.WithLogger(a.logger))
	}
	a.traversal = engine.NewTraversal(a.catalog, a.state, engine.WithLogger(a.logger))
	return a
}

// State returns the underlying session state.
func (a *Assessment) State() *domain.State { return a.state }

// Traversal exposes the navigation engine.
func (a *Assessment) Traversal() *engine.Traversal { return a.traversal }

// Catalog returns the question catalog in use.
func (a *Assessment) Catalog() *catalog.Catalog { return a.catalog }

// Current returns the active question, or false when completed.
func (a *Assessment) Current() (domain.Question, bool) { return a.traversal.Current() }

// Answer records a value for a resolved question id.
func (a *Assessment) Answer(id string, value any) error { return a.traversal.Answer(id, value) }

// Next advances the questionnaire; see engine.Traversal.Advance.
func (a *Assessment) Next() error { return a.traversal.Advance() }

// Back retreats one question.
func (a *Assessment) Back() { a.traversal.Retreat() }

// Completed reports whether the questionnaire is finished.
func (a *Assessment) Completed() bool { return a.traversal.Completed() }

// Summary returns the flattened question/answer rows.
func (a *Assessment) Summary() []engine.SummaryRow {
	return engine.Summarize(a.catalog, a.traversal.Answers(), a.traversal.Evaluator())
}

// Report evaluates the recommendation rules against the answers.
func (a *Assessment) Report() []rules.Suggestion {
	return a.rules.Evaluate(a.traversal.Answers())
}

// Diagram generates the d2 data flow description.
func (a *Assessment) Diagram() string {
	return graph.GenerateD2(a.traversal.Answers(), a.state.Language)
}

// Export writes the session snapshot to w.
func (a *Assessment) Export(w io.Writer) error {
	return session.Export(w, a.state)
}

// Import replaces the session content with a snapshot. On failure the
// session is unchanged. A successful import rebuilds the traversal so
// the cursor lands on the imported position.
func (a *Assessment) Import(r io.Reader) error {
	if err := session.Import(r, a.state); err != nil {
		return err
	}
	a.traversal = engine.NewTraversal(a.catalog, a.state, engine.WithLogger(a.logger))
	return nil
}
