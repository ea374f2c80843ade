package engine

import (
	"github.com/fbruhn/datakompass/pkg/answers"
	"github.com/fbruhn/datakompass/pkg/catalog"
)

// ResponsibleParties collects the responsible parties of a session:
// the per-system responsibility lists (in systems order, so the result
// is deterministic), any stray keys matching the party source prefix,
// and the explicitly enumerated additional parties. Duplicates are
// dropped, first occurrence wins.
func ResponsibleParties(ans *answers.Store) []string {
	var parties []string
	seen := make(map[string]bool)
	add := func(p string) {
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		parties = append(parties, p)
	}

	visited := make(map[string]bool)
	for _, system := range ans.List(catalog.KeySystems) {
		key := catalog.PrefixSystemResponsible + system
		visited[key] = true
		for _, p := range ans.List(key) {
			add(p)
		}
	}
	// Keys left over from renamed or removed systems still count as a
	// party source; sorted scan keeps the output stable.
	for _, key := range ans.KeysWithPrefix(catalog.PrefixSystemResponsible) {
		if visited[key] {
			continue
		}
		for _, p := range ans.List(key) {
			add(p)
		}
	}
	for _, p := range ans.List(catalog.KeyAdditionalResponsible) {
		add(p)
	}
	return parties
}

// Processors returns the deduplicated union of all per-party processor
// lists, in party order. This is the processor axis of the matrix.
func Processors(ans *answers.Store) []string {
	var processors []string
	seen := make(map[string]bool)
	for _, party := range ResponsibleParties(ans) {
		for _, p := range ans.List(catalog.PrefixProcessors + party) {
			if p == "" || seen[p] {
				continue
			}
			seen[p] = true
			processors = append(processors, p)
		}
	}
	return processors
}

// responsibleProcessorsAnswered requires at least one responsible party,
// and at least one processor for every party.
func responsibleProcessorsAnswered(ans *answers.Store) bool {
	parties := ResponsibleParties(ans)
	if len(parties) == 0 {
		return false
	}
	for _, party := range parties {
		if len(ans.List(catalog.PrefixProcessors+party)) == 0 {
			return false
		}
	}
	return true
}

// processorMatrixAnswered requires all three axes to be non-empty and,
// for every processor, at least one checked (purpose, data type) cell.
func processorMatrixAnswered(ans *answers.Store) bool {
	processors := Processors(ans)
	purposes := ans.List(catalog.KeyPurposes)
	dataTypes := ans.List(catalog.KeyDataTypes)
	if len(processors) == 0 || len(purposes) == 0 || len(dataTypes) == 0 {
		return false
	}

	for _, processor := range processors {
		checked := false
		for _, purpose := range purposes {
			for _, dataType := range dataTypes {
				if ans.Bool(catalog.MatrixKey(processor, purpose, dataType)) {
					checked = true
					break
				}
			}
			if checked {
				break
			}
		}
		if !checked {
			return false
		}
	}
	return true
}
