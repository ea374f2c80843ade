package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fbruhn/datakompass/pkg/answers"
	"github.com/fbruhn/datakompass/pkg/catalog"
)

func flowAnswers() *answers.Store {
	ans := answers.New()
	ans.Set(catalog.KeySystems, []string{"CRM", "Mail Server"})
	ans.Set(catalog.PrefixSystemPurpose+"CRM", "customer management")
	ans.Set(catalog.PrefixSystemResponsible+"CRM", []string{"IT Team"})
	ans.Set(catalog.PrefixSystemResponsible+"Mail Server", []string{"IT Team", "Marketing"})
	ans.Set(catalog.PrefixProcessors+"IT Team", []string{"Hoster GmbH"})
	ans.Set(catalog.KeyDataTypes, []string{"Contact Data"})
	ans.Set(catalog.PrefixDataCategories+"Contact Data", []string{"name", "email", "phone"})
	return ans
}

func TestGenerateD2(t *testing.T) {
	t.Run("nodes carry semantic shapes", func(t *testing.T) {
		script := GenerateD2(flowAnswers(), "en")

		assert.Contains(t, script, `sys_CRM: "CRM\nPurpose: customer management"`)
		assert.Contains(t, script, `party_IT_Team: "IT Team\nProcessors: Hoster GmbH" {shape: oval}`)
		assert.Contains(t, script, `{shape: document}`)
	})

	t.Run("long category lists are truncated", func(t *testing.T) {
		script := GenerateD2(flowAnswers(), "en")
		assert.Contains(t, script, `name, email, ...`)
		assert.NotContains(t, script, "phone")
	})

	t.Run("edges connect systems to their parties", func(t *testing.T) {
		script := GenerateD2(flowAnswers(), "en")

		assert.Contains(t, script, "sys_CRM -> party_IT_Team")
		assert.Contains(t, script, "sys_Mail_Server -> party_IT_Team")
		assert.Contains(t, script, "sys_Mail_Server -> party_Marketing")
	})

	t.Run("labels follow the language", func(t *testing.T) {
		script := GenerateD2(flowAnswers(), "de")
		assert.Contains(t, script, "Zweck: customer management")
		assert.Contains(t, script, "Auftragsverarbeiter: Hoster GmbH")
	})

	t.Run("output is deterministic", func(t *testing.T) {
		first := GenerateD2(flowAnswers(), "en")
		second := GenerateD2(flowAnswers(), "en")
		assert.Equal(t, first, second)

		// Node order follows the stored lists.
		assert.Less(t, strings.Index(first, "sys_CRM"), strings.Index(first, "sys_Mail_Server"))
	})

	t.Run("identifiers are sanitized, quotes escaped", func(t *testing.T) {
		ans := answers.New()
		ans.Set(catalog.KeySystems, []string{`Shop "Web" (v2)`})

		script := GenerateD2(ans, "en")
		assert.Contains(t, script, `sys_Shop__Web___v2_: "Shop 'Web' (v2)"`)
	})

	t.Run("empty answers yield an empty script", func(t *testing.T) {
		assert.Empty(t, GenerateD2(answers.New(), "en"))
	})
}
