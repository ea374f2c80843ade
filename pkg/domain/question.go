package domain

// Kind discriminates the question variants in a catalog.
type Kind string

const (
	// KindText collects free text; with StoreAsList set, a comma-separated list.
	KindText Kind = "text"
	// KindSingleChoice collects exactly one of Options (there is always a default).
	KindSingleChoice Kind = "single_choice"
	// KindMultipleChoice collects a subset of Options.
	KindMultipleChoice Kind = "multiple_choice"
	// KindNumber collects a numeric value.
	KindNumber Kind = "number"
	// KindToggle collects a boolean value.
	KindToggle Kind = "toggle"
	// KindSection groups child questions under one catalog position.
	KindSection Kind = "section"
	// KindRepeatedSection instantiates its children once per element of a
	// previously collected list answer (RepeatFor).
	KindRepeatedSection Kind = "repeated_section"
	// KindSpecial marks a node with bespoke collection logic (see SpecialKind).
	KindSpecial Kind = "special"
)

// SpecialKind identifies the bespoke catalog nodes that are not expressible
// as a plain question variant.
type SpecialKind string

const (
	// SpecialResponsibleProcessors collects, for every responsible party,
	// the processors acting on that party's behalf.
	SpecialResponsibleProcessors SpecialKind = "responsible_processors"
	// SpecialProcessorMatrix collects a boolean selection over
	// processors x purposes x data types.
	SpecialProcessorMatrix SpecialKind = "processor_matrix"
)

// ItemPlaceholder is substituted with the concrete item value when a
// repeated section is instantiated.
const ItemPlaceholder = "{item}"

// Question is one node of the catalog. Kind decides which payload fields
// are meaningful; Catalog validation enforces that at load time.
type Question struct {
	ID   string `json:"id" yaml:"id"`
	Kind Kind   `json:"kind" yaml:"kind"`

	// Text is the display text shown to the user. Inside a repeated
	// section it may contain the {item} placeholder.
	Text string `json:"text" yaml:"text"`
	Help string `json:"help,omitempty" yaml:"help,omitempty"`

	// Options is the ordered choice list for single/multiple choice kinds.
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`

	Required    bool `json:"required,omitempty" yaml:"required,omitempty"`
	StoreAsList bool `json:"store_as_list,omitempty" yaml:"store_as_list,omitempty"`
	Multiline   bool `json:"multiline,omitempty" yaml:"multiline,omitempty"`

	// Condition gates visibility. A nil condition always shows.
	Condition *Condition `json:"condition,omitempty" yaml:"condition,omitempty"`

	// Children holds the ordered sub-questions of a (repeated) section.
	Children []Question `json:"questions,omitempty" yaml:"questions,omitempty"`

	// RepeatFor names the prior list-valued answer driving a repeated section.
	RepeatFor string `json:"repeat_for,omitempty" yaml:"repeat_for,omitempty"`

	// Special selects the bespoke logic for KindSpecial nodes.
	Special SpecialKind `json:"special,omitempty" yaml:"special,omitempty"`
}

// IsSection reports whether the question groups children.
func (q Question) IsSection() bool {
	return q.Kind == KindSection || q.Kind == KindRepeatedSection
}
