package catalog

import (
	"strings"

	"github.com/fbruhn/datakompass/pkg/domain"
)

// Instantiate resolves a repeated-section child for one concrete item:
// the {item} placeholder in the id, the display text, and the condition
// reference are substituted once, here. Answer lookups later never have
// to recover the template from a resolved key.
func Instantiate(child domain.Question, item string) domain.Question {
	q := child
	q.ID = strings.ReplaceAll(child.ID, domain.ItemPlaceholder, item)
	q.Text = strings.ReplaceAll(child.Text, domain.ItemPlaceholder, item)
	if child.Condition != nil {
		cond := *child.Condition
		cond.QuestionID = strings.ReplaceAll(cond.QuestionID, domain.ItemPlaceholder, item)
		q.Condition = &cond
	}
	return q
}

// Items returns the driving list for a repeated section, with empty
// strings dropped: an empty item would collapse templated ids into each
// other, so it is skipped rather than instantiated.
func Items(list []string) []string {
	items := make([]string, 0, len(list))
	for _, item := range list {
		if strings.TrimSpace(item) == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}
