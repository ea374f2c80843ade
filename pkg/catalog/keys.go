package catalog

// Well-known answer keys and key prefixes shared between the builtin
// catalog, the special-question logic, and the diagram generator.
const (
	// KeySystemName is the first collected system name, used to derive
	// snapshot filenames.
	KeySystemName = "system_name"

	// KeySystems is the list of systems driving the system details section.
	KeySystems = "systems"

	// PrefixSystemResponsible + system holds the responsible parties of
	// one system. Keys with this prefix are the "party source" scanned by
	// the responsible-processors special question.
	PrefixSystemResponsible = "system_responsible_"

	// PrefixSystemPurpose + system holds the purpose of one system.
	PrefixSystemPurpose = "system_purpose_"

	// KeyAdditionalResponsible supplements the scanned parties with
	// explicitly enumerated ones.
	KeyAdditionalResponsible = "additional_responsible"

	// PrefixProcessors + party holds the processors of one responsible party.
	PrefixProcessors = "processors_"

	// KeyPurposes and KeyDataTypes are two of the three matrix axes; the
	// third (processors) is the union over all PrefixProcessors lists.
	KeyPurposes  = "purposes"
	KeyDataTypes = "data_types"

	// PrefixDataCategories + dataType holds the categories of one data type.
	PrefixDataCategories = "data_categories_"

	// PrefixMatrix starts the per-cell keys of the processor matrix.
	PrefixMatrix = "matrix_"
)

// MatrixKey builds the answer key of one processor-matrix cell.
func MatrixKey(processor, purpose, dataType string) string {
	return PrefixMatrix + processor + "_" + purpose + "_" + dataType
}
