package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fbruhn/datakompass/pkg/answers"
	"github.com/fbruhn/datakompass/pkg/domain"
)

func conditional(op domain.Operator, value any) domain.Question {
	return domain.Question{
		ID:   "dependent",
		Kind: domain.KindText,
		Condition: &domain.Condition{
			QuestionID: "source",
			Operator:   op,
			Value:      value,
		},
	}
}

func TestShouldShow(t *testing.T) {
	ev := NewEvaluator(nil)

	t.Run("no condition is always visible", func(t *testing.T) {
		q := domain.Question{ID: "q", Kind: domain.KindText}
		assert.True(t, ev.ShouldShow(q, answers.New()))
	})

	t.Run("missing reference fails closed", func(t *testing.T) {
		for _, op := range []domain.Operator{domain.OpEquals, domain.OpNotEquals, domain.OpIn, domain.OpContains} {
			assert.False(t, ev.ShouldShow(conditional(op, "x"), answers.New()), "operator %s", op)
		}
	})

	t.Run("equals and not equals", func(t *testing.T) {
		ans := answers.New()
		ans.Set("source", "Yes")

		assert.True(t, ev.ShouldShow(conditional(domain.OpEquals, "Yes"), ans))
		assert.False(t, ev.ShouldShow(conditional(domain.OpEquals, "No"), ans))
		assert.False(t, ev.ShouldShow(conditional(domain.OpNotEquals, "Yes"), ans))
		assert.True(t, ev.ShouldShow(conditional(domain.OpNotEquals, "No"), ans))
	})

	t.Run("numeric operands compare across int and float", func(t *testing.T) {
		ans := answers.New()
		ans.Set("source", float64(3))
		assert.True(t, ev.ShouldShow(conditional(domain.OpEquals, 3), ans))
	})

	t.Run("in expects a scalar answer and a sequence operand", func(t *testing.T) {
		ans := answers.New()
		ans.Set("source", "Data Processor")

		assert.True(t, ev.ShouldShow(conditional(domain.OpIn, []string{"Data Controller", "Data Processor"}), ans))
		assert.False(t, ev.ShouldShow(conditional(domain.OpIn, []string{"Data Controller"}), ans))
		// Non-sequence operand never matches.
		assert.False(t, ev.ShouldShow(conditional(domain.OpIn, "Data Processor"), ans))
	})

	t.Run("contains expects a list answer", func(t *testing.T) {
		ans := answers.New()
		ans.Set("source", []string{"Consent", "Contract"})

		assert.True(t, ev.ShouldShow(conditional(domain.OpContains, "Consent"), ans))
		assert.False(t, ev.ShouldShow(conditional(domain.OpContains, "Vital Interests"), ans))
	})

	t.Run("contains falls back to equality for scalar answers", func(t *testing.T) {
		ans := answers.New()
		ans.Set("source", "Consent")

		assert.True(t, ev.ShouldShow(conditional(domain.OpContains, "Consent"), ans))
		assert.False(t, ev.ShouldShow(conditional(domain.OpContains, "Contract"), ans))
	})

	t.Run("unknown operator defaults to visible", func(t *testing.T) {
		ans := answers.New()
		ans.Set("source", "anything")
		assert.True(t, ev.ShouldShow(conditional("~=", "x"), ans))
	})
}
