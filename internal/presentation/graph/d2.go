package graph

import (
	"fmt"
	"strings"

	"github.com/fbruhn/datakompass/internal/i18n"
	"github.com/fbruhn/datakompass/pkg/answers"
	"github.com/fbruhn/datakompass/pkg/catalog"
	"github.com/fbruhn/datakompass/pkg/engine"
)

// GenerateD2 produces a d2 diagram description of the collected data
// flow. It applies semantic shapes:
// - System: rectangle (default)
// - Responsible party: oval, annotated with its processors
// - Data type: document, annotated with up to two categories
// Edges run from each system to its responsible parties. Output is
// deterministic for a given answer map: node order follows the stored
// lists and derived party order, never map iteration.
func GenerateD2(ans *answers.Store, lang string) string {
	var sb strings.Builder

	systems := ans.List(catalog.KeySystems)
	parties := engine.ResponsibleParties(ans)
	dataTypes := ans.List(catalog.KeyDataTypes)

	for _, system := range systems {
		id := sanitizeD2ID("sys_" + system)
		label := system
		if purpose := ans.String(catalog.PrefixSystemPurpose + system); purpose != "" {
			label = fmt.Sprintf("%s\\n%s: %s", system, i18n.Text(lang, "purpose_label"), purpose)
		}
		fmt.Fprintf(&sb, "%s: \"%s\"\n", id, escapeD2(label))
	}

	for _, party := range parties {
		id := sanitizeD2ID("party_" + party)
		label := party
		if processors := ans.List(catalog.PrefixProcessors + party); len(processors) > 0 {
			label = fmt.Sprintf("%s\\n%s: %s", party, i18n.Text(lang, "processors_label"), strings.Join(processors, ", "))
		}
		fmt.Fprintf(&sb, "%s: \"%s\" {shape: oval}\n", id, escapeD2(label))
	}

	for _, dataType := range dataTypes {
		id := sanitizeD2ID("data_" + dataType)
		label := dataType
		if categories := ans.List(catalog.PrefixDataCategories + dataType); len(categories) > 0 {
			shown := categories
			if len(shown) > 2 {
				shown = append(shown[:2:2], "...")
			}
			label = fmt.Sprintf("%s\\n%s", dataType, strings.Join(shown, ", "))
		}
		fmt.Fprintf(&sb, "%s: \"%s\" {shape: document}\n", id, escapeD2(label))
	}

	for _, system := range systems {
		from := sanitizeD2ID("sys_" + system)
		for _, party := range ans.List(catalog.PrefixSystemResponsible + system) {
			fmt.Fprintf(&sb, "%s -> %s\n", from, sanitizeD2ID("party_"+party))
		}
	}

	return sb.String()
}

func sanitizeD2ID(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

func escapeD2(s string) string {
	return strings.ReplaceAll(s, `"`, `'`)
}
