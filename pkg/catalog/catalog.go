package catalog

import (
	"fmt"
	"strings"

	"github.com/fbruhn/datakompass/pkg/domain"
)

// Catalog is the static, ordered definition of all questions of an
// assessment. It is immutable after construction; New validates the
// kind-specific payload of every node.
type Catalog struct {
	questions []domain.Question
	index     map[string]int
}

// New builds a catalog from an ordered question list, validating it.
func New(questions []domain.Question) (*Catalog, error) {
	c := &Catalog{
		questions: questions,
		index:     make(map[string]int, len(questions)),
	}
	seen := make(map[string]bool)
	for i, q := range questions {
		if err := validate(q, false, seen); err != nil {
			return nil, fmt.Errorf("catalog position %d: %w", i, err)
		}
		c.index[q.ID] = i
	}
	return c, nil
}

// MustNew panics on an invalid catalog. Reserved for compiled-in catalogs
// that are covered by tests.
func MustNew(questions []domain.Question) *Catalog {
	c, err := New(questions)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of top-level nodes.
func (c *Catalog) Len() int { return len(c.questions) }

// At returns the top-level node at position i.
func (c *Catalog) At(i int) domain.Question { return c.questions[i] }

// Questions returns the full ordered node list.
func (c *Catalog) Questions() []domain.Question { return c.questions }

// ByID finds a top-level node by id.
func (c *Catalog) ByID(id string) (domain.Question, bool) {
	i, ok := c.index[id]
	if !ok {
		return domain.Question{}, false
	}
	return c.questions[i], true
}

func validate(q domain.Question, insideRepeat bool, seen map[string]bool) error {
	if q.ID == "" {
		return fmt.Errorf("question without id")
	}
	if !insideRepeat && strings.Contains(q.ID, domain.ItemPlaceholder) {
		return fmt.Errorf("question %s: %s placeholder outside repeated section", q.ID, domain.ItemPlaceholder)
	}
	if seen[q.ID] {
		return fmt.Errorf("duplicate question id %s", q.ID)
	}
	seen[q.ID] = true

	switch q.Kind {
	case domain.KindText, domain.KindNumber, domain.KindToggle:
		if len(q.Options) > 0 {
			return fmt.Errorf("question %s: options not allowed for kind %s", q.ID, q.Kind)
		}
	case domain.KindSingleChoice, domain.KindMultipleChoice:
		if len(q.Options) == 0 {
			return fmt.Errorf("question %s: kind %s requires options", q.ID, q.Kind)
		}
	case domain.KindSection, domain.KindRepeatedSection:
		if len(q.Children) == 0 {
			return fmt.Errorf("question %s: section without children", q.ID)
		}
		if q.Kind == domain.KindRepeatedSection && q.RepeatFor == "" {
			return fmt.Errorf("question %s: repeated section without repeat_for", q.ID)
		}
		childScope := make(map[string]bool)
		for _, child := range q.Children {
			if child.IsSection() {
				return fmt.Errorf("question %s: nested sections are not supported", q.ID)
			}
			if err := validate(child, q.Kind == domain.KindRepeatedSection, childScope); err != nil {
				return fmt.Errorf("section %s: %w", q.ID, err)
			}
		}
	case domain.KindSpecial:
		switch q.Special {
		case domain.SpecialResponsibleProcessors, domain.SpecialProcessorMatrix:
		default:
			return fmt.Errorf("question %s: unknown special kind %q", q.ID, q.Special)
		}
	default:
		return fmt.Errorf("question %s: unknown kind %q", q.ID, q.Kind)
	}

	if q.Kind != domain.KindSection && q.Kind != domain.KindRepeatedSection && len(q.Children) > 0 {
		return fmt.Errorf("question %s: children not allowed for kind %s", q.ID, q.Kind)
	}
	if q.Condition != nil && q.Condition.QuestionID == "" {
		return fmt.Errorf("question %s: condition without question_id", q.ID)
	}
	return nil
}
