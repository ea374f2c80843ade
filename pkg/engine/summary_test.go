package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fbruhn/datakompass/pkg/answers"
	"github.com/fbruhn/datakompass/pkg/catalog"
	"github.com/fbruhn/datakompass/pkg/domain"
)

func TestSummarize(t *testing.T) {
	cat, err := catalog.New([]domain.Question{
		{ID: "name", Kind: domain.KindText, Text: "Name?", Required: true},
		{ID: "systems", Kind: domain.KindText, Text: "Systems?", StoreAsList: true},
		{
			ID: "system_details", Kind: domain.KindRepeatedSection, Text: "Details {item}",
			RepeatFor: "systems",
			Children: []domain.Question{
				{ID: "purpose_{item}", Kind: domain.KindText, Text: "Purpose of {item}?"},
			},
		},
		{
			ID: "hidden", Kind: domain.KindText, Text: "Hidden?",
			Condition: &domain.Condition{QuestionID: "never", Operator: domain.OpEquals, Value: "x"},
		},
		{ID: "count", Kind: domain.KindNumber, Text: "Count?"},
		{ID: "dpo", Kind: domain.KindToggle, Text: "DPO?"},
	})
	require.NoError(t, err)

	ans := answers.New()
	ans.Set("name", "CRM")
	ans.Set("systems", []string{"A", "B"})
	ans.Set("purpose_A", "billing")
	ans.Set("count", float64(12))
	ans.Set("dpo", true)

	rows := Summarize(cat, ans, nil)

	var ids []string
	byID := make(map[string]SummaryRow)
	for _, row := range rows {
		ids = append(ids, row.QuestionID)
		byID[row.QuestionID] = row
	}

	// Repeated children expand per item, the hidden question is absent.
	assert.Equal(t, []string{"name", "systems", "purpose_A", "purpose_B", "count", "dpo"}, ids)

	assert.Equal(t, "Purpose of A?", byID["purpose_A"].Question)
	assert.Equal(t, "billing", byID["purpose_A"].Answer)
	assert.Equal(t, "", byID["purpose_B"].Answer)
	assert.Equal(t, "A, B", byID["systems"].Answer)
	assert.Equal(t, "12", byID["count"].Answer)
	assert.Equal(t, "yes", byID["dpo"].Answer)
}

func TestSummarizeSpecials(t *testing.T) {
	cat, err := catalog.New([]domain.Question{
		{ID: "systems", Kind: domain.KindText, Text: "Systems?", StoreAsList: true},
		{ID: "rp", Kind: domain.KindSpecial, Special: domain.SpecialResponsibleProcessors, Text: "Processors"},
		{ID: "pm", Kind: domain.KindSpecial, Special: domain.SpecialProcessorMatrix, Text: "Matrix"},
	})
	require.NoError(t, err)

	ans := answers.New()
	ans.Set(catalog.KeySystems, []string{"S"})
	ans.Set(catalog.PrefixSystemResponsible+"S", []string{"P"})
	ans.Set(catalog.PrefixProcessors+"P", []string{"Hoster"})
	ans.Set(catalog.KeyPurposes, []string{"Billing"})
	ans.Set(catalog.KeyDataTypes, []string{"Email"})
	ans.Set(catalog.MatrixKey("Hoster", "Billing", "Email"), true)

	rows := Summarize(cat, ans, nil)
	require.Len(t, rows, 3)

	assert.Equal(t, "Processors: P", rows[1].Question)
	assert.Equal(t, "Hoster", rows[1].Answer)
	assert.Equal(t, "Matrix: Hoster", rows[2].Question)
	assert.Equal(t, "Billing / Email", rows[2].Answer)
}
