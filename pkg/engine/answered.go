package engine

import (
	"github.com/fbruhn/datakompass/pkg/answers"
	"github.com/fbruhn/datakompass/pkg/catalog"
	"github.com/fbruhn/datakompass/pkg/domain"
)

// IsAnswered reports whether a catalog node is fully answered and
// traversal may advance past it.
//
// Choice, number, and toggle questions always carry a value once
// rendered (there is always a default), so they never block. Text
// questions block only when required. Sections are the conjunction over
// their visible children; hidden children are excluded.
func (e *Evaluator) IsAnswered(q domain.Question, ans *answers.Store) bool {
	switch q.Kind {
	case domain.KindText:
		if !q.Required {
			return true
		}
		if q.StoreAsList {
			return len(ans.List(q.ID)) > 0
		}
		return ans.String(q.ID) != ""

	case domain.KindMultipleChoice:
		if !q.Required {
			return true
		}
		return len(ans.List(q.ID)) > 0

	case domain.KindSingleChoice, domain.KindNumber, domain.KindToggle:
		return true

	case domain.KindSection:
		for _, child := range q.Children {
			if !e.ShouldShow(child, ans) {
				continue
			}
			if !e.IsAnswered(child, ans) {
				return false
			}
		}
		return true

	case domain.KindRepeatedSection:
		// An empty driving list blocks traversal: the user must populate
		// the list before per-item detail can be collected.
		items := catalog.Items(ans.List(q.RepeatFor))
		if len(items) == 0 {
			return false
		}
		for _, item := range items {
			for _, child := range q.Children {
				inst := catalog.Instantiate(child, item)
				if !e.ShouldShow(inst, ans) {
					continue
				}
				if !e.IsAnswered(inst, ans) {
					return false
				}
			}
		}
		return true

	case domain.KindSpecial:
		switch q.Special {
		case domain.SpecialResponsibleProcessors:
			return responsibleProcessorsAnswered(ans)
		case domain.SpecialProcessorMatrix:
			return processorMatrixAnswered(ans)
		}
		return false
	}
	return false
}
