package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fbruhn/datakompass/pkg/domain"
)

func TestLoadYAML(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		doc := `
catalog:
  - id: system_name
    kind: text
    text: "Name of the system?"
    required: true
  - id: environment
    kind: single_choice
    text: "Where does it run?"
    options: ["Cloud", "On-Premise"]
  - id: regions
    kind: text
    text: "Regions (comma separated):"
    store_as_list: true
  - id: region_details
    kind: repeated_section
    text: "Details for {item}"
    repeat_for: regions
    questions:
      - id: "region_owner_{item}"
        kind: text
        text: "Who operates {item}?"
        required: true
  - id: cloud_notes
    kind: text
    text: "Cloud specifics:"
    condition:
      question_id: environment
      operator: "=="
      value: Cloud
`
		cat, err := LoadYAML(strings.NewReader(doc))
		require.NoError(t, err)
		assert.Equal(t, 5, cat.Len())

		q, ok := cat.ByID("cloud_notes")
		require.True(t, ok)
		require.NotNil(t, q.Condition)
		assert.Equal(t, domain.OpEquals, q.Condition.Operator)
		assert.Equal(t, "Cloud", q.Condition.Value)

		rep, ok := cat.ByID("region_details")
		require.True(t, ok)
		assert.Equal(t, "regions", rep.RepeatFor)
		require.Len(t, rep.Children, 1)
		assert.Equal(t, "region_owner_{item}", rep.Children[0].ID)
		assert.True(t, rep.Children[0].Required)
	})

	t.Run("invalid definitions fail validation", func(t *testing.T) {
		_, err := LoadYAML(strings.NewReader("catalog:\n  - id: q\n    kind: single_choice\n"))
		assert.ErrorContains(t, err, "requires options")
	})

	t.Run("empty document rejected", func(t *testing.T) {
		_, err := LoadYAML(strings.NewReader("catalog: []\n"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml rejected", func(t *testing.T) {
		_, err := LoadYAML(strings.NewReader("catalog: [not closed"))
		assert.Error(t, err)
	})
}
