package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fbruhn/datakompass/pkg/answers"
	"github.com/fbruhn/datakompass/pkg/catalog"
	"github.com/fbruhn/datakompass/pkg/domain"
)

func TestIsAnswered(t *testing.T) {
	ev := NewEvaluator(nil)

	t.Run("required text blocks until filled", func(t *testing.T) {
		q := domain.Question{ID: "name", Kind: domain.KindText, Required: true}
		ans := answers.New()

		assert.False(t, ev.IsAnswered(q, ans))
		ans.Set("name", "CRM")
		assert.True(t, ev.IsAnswered(q, ans))
	})

	t.Run("optional text never blocks", func(t *testing.T) {
		q := domain.Question{ID: "notes", Kind: domain.KindText}
		assert.True(t, ev.IsAnswered(q, answers.New()))
	})

	t.Run("required list text needs at least one item", func(t *testing.T) {
		q := domain.Question{ID: "systems", Kind: domain.KindText, Required: true, StoreAsList: true}
		ans := answers.New()

		assert.False(t, ev.IsAnswered(q, ans))
		ans.Set("systems", []string{})
		assert.False(t, ev.IsAnswered(q, ans))
		ans.Set("systems", []string{"CRM"})
		assert.True(t, ev.IsAnswered(q, ans))
	})

	t.Run("defaulted kinds always count as answered", func(t *testing.T) {
		ans := answers.New()
		for _, kind := range []domain.Kind{domain.KindSingleChoice, domain.KindNumber, domain.KindToggle} {
			q := domain.Question{ID: "q", Kind: kind, Required: true}
			assert.True(t, ev.IsAnswered(q, ans), "kind %s", kind)
		}
	})

	t.Run("section is the conjunction over visible children", func(t *testing.T) {
		section := domain.Question{
			ID:   "transfer_details",
			Kind: domain.KindSection,
			Children: []domain.Question{
				{ID: "countries", Kind: domain.KindText, Required: true},
				{
					ID: "hidden", Kind: domain.KindText, Required: true,
					Condition: &domain.Condition{QuestionID: "never_set", Operator: domain.OpEquals, Value: "x"},
				},
			},
		}
		ans := answers.New()

		assert.False(t, ev.IsAnswered(section, ans))
		// The hidden child does not block.
		ans.Set("countries", "US")
		assert.True(t, ev.IsAnswered(section, ans))
	})

	t.Run("repeated section with empty driving list blocks", func(t *testing.T) {
		rep := domain.Question{
			ID:        "system_details",
			Kind:      domain.KindRepeatedSection,
			RepeatFor: "systems",
			Children: []domain.Question{
				{ID: "system_purpose_{item}", Kind: domain.KindText, Required: true},
				{ID: "system_responsible_{item}", Kind: domain.KindText, Required: true, StoreAsList: true},
			},
		}
		ans := answers.New()

		assert.False(t, ev.IsAnswered(rep, ans))

		ans.Set("systems", []string{"A"})
		ans.Set("system_purpose_A", "x")
		ans.Set("system_responsible_A", []string{"Bob"})
		assert.True(t, ev.IsAnswered(rep, ans))

		ans.Delete("system_responsible_A")
		assert.False(t, ev.IsAnswered(rep, ans))
	})

	t.Run("responsible processors need one per party", func(t *testing.T) {
		q := domain.Question{ID: "rp", Kind: domain.KindSpecial, Special: domain.SpecialResponsibleProcessors}
		ans := answers.New()

		assert.False(t, ev.IsAnswered(q, ans))

		ans.Set(catalog.KeySystems, []string{"CRM"})
		ans.Set(catalog.PrefixSystemResponsible+"CRM", []string{"Alice", "Bob"})
		ans.Set(catalog.PrefixProcessors+"Alice", []string{"Hoster"})
		assert.False(t, ev.IsAnswered(q, ans), "Bob has no processor yet")

		ans.Set(catalog.PrefixProcessors+"Bob", []string{"Hoster"})
		assert.True(t, ev.IsAnswered(q, ans))
	})

	t.Run("processor matrix needs a checked cell per processor", func(t *testing.T) {
		q := domain.Question{ID: "pm", Kind: domain.KindSpecial, Special: domain.SpecialProcessorMatrix}
		ans := answers.New()
		ans.Set(catalog.KeySystems, []string{"S"})
		ans.Set(catalog.PrefixSystemResponsible+"S", []string{"P"})
		ans.Set(catalog.PrefixProcessors+"P", []string{"P1"})
		ans.Set(catalog.KeyPurposes, []string{"Pu1"})
		ans.Set(catalog.KeyDataTypes, []string{"D1"})

		assert.False(t, ev.IsAnswered(q, ans))

		ans.Set(catalog.MatrixKey("P1", "Pu1", "D1"), true)
		assert.True(t, ev.IsAnswered(q, ans))
	})
}

func TestResponsibleParties(t *testing.T) {
	t.Run("systems order, stray keys, additional parties, deduplicated", func(t *testing.T) {
		ans := answers.New()
		ans.Set(catalog.KeySystems, []string{"B", "A"})
		ans.Set(catalog.PrefixSystemResponsible+"B", []string{"Bea", "Shared"})
		ans.Set(catalog.PrefixSystemResponsible+"A", []string{"Ann"})
		// Left over from a renamed system, still a party source.
		ans.Set(catalog.PrefixSystemResponsible+"Old", []string{"Olga"})
		ans.Set(catalog.KeyAdditionalResponsible, []string{"Shared", "Extra"})

		assert.Equal(t, []string{"Bea", "Shared", "Ann", "Olga", "Extra"}, ResponsibleParties(ans))
	})

	t.Run("empty store yields no parties", func(t *testing.T) {
		assert.Empty(t, ResponsibleParties(answers.New()))
	})
}

func TestProcessors(t *testing.T) {
	ans := answers.New()
	ans.Set(catalog.KeySystems, []string{"S"})
	ans.Set(catalog.PrefixSystemResponsible+"S", []string{"P1", "P2"})
	ans.Set(catalog.PrefixProcessors+"P1", []string{"Hoster", "Mailer"})
	ans.Set(catalog.PrefixProcessors+"P2", []string{"Mailer", "Analytics"})

	assert.Equal(t, []string{"Hoster", "Mailer", "Analytics"}, Processors(ans))
}
