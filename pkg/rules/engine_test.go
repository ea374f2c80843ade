package rules

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fbruhn/datakompass/pkg/answers"
)

func suggestionByID(suggestions []Suggestion, id string) (Suggestion, bool) {
	for _, s := range suggestions {
		if s.ID == id {
			return s, true
		}
	}
	return Suggestion{}, false
}

func TestEvaluate(t *testing.T) {
	t.Run("consent rule fires on list membership", func(t *testing.T) {
		e := NewEngine()

		ans := answers.New()
		ans.Set("processing_purposes", []string{"Consent", "Contract"})
		s, ok := suggestionByID(e.Evaluate(ans), "consent_management")
		require.True(t, ok)
		assert.Contains(t, s.Recommendations, "Document consent basis")

		ans.Set("processing_purposes", []string{"Contract"})
		_, ok = suggestionByID(e.Evaluate(ans), "consent_management")
		assert.False(t, ok)
	})

	t.Run("evaluation is idempotent and order stable", func(t *testing.T) {
		e := NewEngine()
		ans := answers.New()
		ans.Set("data_transfers", "Yes")
		ans.Set("retention_period", "2 years")
		ans.Set("processing_purposes", []string{"Consent"})

		first := e.Evaluate(ans)
		second := e.Evaluate(ans)
		assert.Equal(t, first, second)

		// Output follows table order, not answer insertion order.
		var ids []string
		for _, s := range first {
			ids = append(ids, s.ID)
		}
		assert.Equal(t, []string{"consent_management", "cross_border_transfers", "data_retention", "incident_response"}, ids)
	})

	t.Run("a panicking rule is skipped, the rest still run", func(t *testing.T) {
		table := []Rule{
			{
				ID: "broken", Title: "Broken",
				When: func(*answers.Store) bool { panic("boom") },
			},
			{
				ID: "fine", Title: "Fine",
				When:            func(*answers.Store) bool { return true },
				Recommendations: []Recommendation{Static("keep going")},
			},
		}
		e := NewEngine(WithRules(table))

		suggestions := e.Evaluate(answers.New())
		require.Len(t, suggestions, 1)
		assert.Equal(t, "fine", suggestions[0].ID)
	})

	t.Run("templates interpolate answers", func(t *testing.T) {
		e := NewEngine()
		ans := answers.New()
		ans.Set("retention_period", "6 months")

		s, ok := suggestionByID(e.Evaluate(ans), "data_retention")
		require.True(t, ok)
		assert.Contains(t, s.Recommendations[0], "6 months")
	})
}

func TestBuiltinRules(t *testing.T) {
	e := NewEngine()

	t.Run("gdpr applicability matches EU locations case-insensitively", func(t *testing.T) {
		ans := answers.New()
		ans.Set("data_parties", []string{"Acme"})
		ans.Set("party_location_Acme", "Germany (EU)")
		_, ok := suggestionByID(e.Evaluate(ans), "gdpr_applicability")
		assert.True(t, ok)

		ans.Set("party_location_Acme", "USA")
		_, ok = suggestionByID(e.Evaluate(ans), "gdpr_applicability")
		assert.False(t, ok)
	})

	t.Run("special category data via per-type sensitivity", func(t *testing.T) {
		ans := answers.New()
		ans.Set("data_types", []string{"diagnosis"})
		ans.Set("data_sensitivity_diagnosis", "Special Category (Sensitive) Personal Data")
		_, ok := suggestionByID(e.Evaluate(ans), "special_category_data")
		assert.True(t, ok)
	})

	t.Run("processor agreements list the processors", func(t *testing.T) {
		ans := answers.New()
		ans.Set("data_parties", []string{"Hoster", "Client"})
		ans.Set("party_role_Hoster", "Data Processor")
		ans.Set("party_role_Client", "Data Controller")

		s, ok := suggestionByID(e.Evaluate(ans), "data_processor_agreements")
		require.True(t, ok)
		assert.Contains(t, s.Recommendations[0], "Hoster")
		assert.NotContains(t, s.Recommendations[0], "Client")
	})

	t.Run("missing security measures trigger advice only once measures exist", func(t *testing.T) {
		ans := answers.New()
		_, ok := suggestionByID(e.Evaluate(ans), "encryption")
		assert.False(t, ok, "no measures collected yet")

		ans.Set("security_measures", []string{"Regular Audits"})
		_, ok = suggestionByID(e.Evaluate(ans), "encryption")
		assert.True(t, ok)
		_, ok = suggestionByID(e.Evaluate(ans), "access_controls")
		assert.True(t, ok)

		ans.Set("security_measures", []string{"Encryption", "Access Controls"})
		_, ok = suggestionByID(e.Evaluate(ans), "encryption")
		assert.False(t, ok)
	})

	t.Run("dpo rule keys on scale and sensitivity", func(t *testing.T) {
		ans := answers.New()
		ans.Set("subject_count", float64(50000))
		_, ok := suggestionByID(e.Evaluate(ans), "data_protection_officer")
		assert.True(t, ok)

		ans.Set("dpo_appointed", true)
		_, ok = suggestionByID(e.Evaluate(ans), "data_protection_officer")
		assert.False(t, ok)
	})

	t.Run("incident response always applies", func(t *testing.T) {
		_, ok := suggestionByID(e.Evaluate(answers.New()), "incident_response")
		assert.True(t, ok)
	})
}

func TestExports(t *testing.T) {
	suggestions := []Suggestion{
		{
			ID: "r1", Title: "First", Description: "Desc one",
			Recommendations: []string{"do a", "do b"},
		},
		{
			ID: "r2", Title: "Second", Description: "Desc two",
			Recommendations: []string{"do c"},
		},
	}

	t.Run("markdown", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteMarkdown(&buf, "Report", suggestions))
		out := buf.String()

		assert.Contains(t, out, "# Report")
		assert.Contains(t, out, "## First")
		assert.Contains(t, out, "- do a")
		// Order preserved.
		assert.Less(t, strings.Index(out, "First"), strings.Index(out, "Second"))
	})

	t.Run("csv repeats title per recommendation", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteCSV(&buf, suggestions))

		records, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, records, 4) // header + 3 recommendations
		assert.Equal(t, []string{"id", "title", "description", "recommendation"}, records[0])
		assert.Equal(t, "r1", records[1][0])
		assert.Equal(t, "r1", records[2][0])
		assert.Equal(t, "do c", records[3][3])
	})

	t.Run("json round trip", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteJSON(&buf, suggestions))

		var decoded []Suggestion
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, suggestions, decoded)
	})

	t.Run("empty suggestion list renders a note", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteMarkdown(&buf, "Report", nil))
		assert.Contains(t, buf.String(), "No recommendations")
	})
}
