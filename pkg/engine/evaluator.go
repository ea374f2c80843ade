package engine

import (
	"log/slog"
	"reflect"

	"github.com/fbruhn/datakompass/internal/logging"
	"github.com/fbruhn/datakompass/pkg/answers"
	"github.com/fbruhn/datakompass/pkg/domain"
)

// Evaluator decides question visibility from collected answers.
// It is total: malformed conditions never raise, they degrade to a
// defined default (fail-closed for missing references, permissive for
// unknown operators).
type Evaluator struct {
	logger *slog.Logger
}

// NewEvaluator creates an evaluator. A nil logger defaults to no-op.
func NewEvaluator(logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Evaluator{logger: logger}
}

// ShouldShow reports whether a question is visible given the answers.
//
// A question without condition is always visible. A condition whose
// referenced answer has not been collected yet is not satisfied: a
// question can never be shown before its dependency is answered.
func (e *Evaluator) ShouldShow(q domain.Question, ans *answers.Store) bool {
	cond := q.Condition
	if cond == nil {
		return true
	}

	answer, ok := ans.Get(cond.QuestionID)
	if !ok {
		return false
	}

	switch cond.Operator {
	case domain.OpEquals:
		return valueEqual(answer, cond.Value)
	case domain.OpNotEquals:
		return !valueEqual(answer, cond.Value)
	case domain.OpIn:
		// The stored answer is expected to be a scalar, the operand a
		// sequence. A non-sequence operand never matches.
		seq, ok := asStringSlice(cond.Value)
		if !ok {
			return false
		}
		for _, member := range seq {
			if valueEqual(answer, member) {
				return true
			}
		}
		return false
	case domain.OpContains:
		// The stored answer is expected to be a list; a scalar answer
		// falls back to plain equality. Intentionally asymmetric to OpIn.
		if list, ok := answer.([]string); ok {
			for _, member := range list {
				if valueEqual(member, cond.Value) {
					return true
				}
			}
			return false
		}
		return valueEqual(answer, cond.Value)
	default:
		e.logger.Warn("unknown condition operator, defaulting to visible",
			"question", q.ID,
			"operator", string(cond.Operator),
		)
		return true
	}
}

// valueEqual compares an answer against a condition operand. Numeric
// operands are normalized to float64 so catalog literals written as ints
// compare equal to stored numbers.
func valueEqual(a, b any) bool {
	if af, ok := asFloat(a); ok {
		if bf, ok := asFloat(b); ok {
			return af == bf
		}
	}
	return reflect.DeepEqual(a, b)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func asStringSlice(v any) ([]string, bool) {
	switch s := v.(type) {
	case []string:
		return s, true
	case []any:
		out := make([]string, 0, len(s))
		for _, elem := range s {
			str, ok := elem.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	}
	return nil, false
}
