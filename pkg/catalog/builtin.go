package catalog

import "github.com/fbruhn/datakompass/pkg/domain"

// Builtin returns the compiled-in data flow assessment catalog.
// The order is the traversal order; conditions only ever reference
// answers collected earlier.
func Builtin() *Catalog {
	return MustNew([]domain.Question{
		{
			ID:       KeySystemName,
			Kind:     domain.KindText,
			Text:     "What is the name of the system you're analyzing?",
			Help:     "Enter the name of the data processing system or application",
			Required: true,
		},
		{
			ID:        "system_description",
			Kind:      domain.KindText,
			Text:      "Briefly describe the purpose of this system:",
			Help:      "What does this system do? What is its primary function?",
			Required:  true,
			Multiline: true,
		},
		{
			ID:          KeySystems,
			Kind:        domain.KindText,
			Text:        "List all systems involved in the processing (comma separated):",
			Help:        "Include applications, databases, and services that hold or move the data",
			Required:    true,
			StoreAsList: true,
		},
		{
			ID:        "system_details",
			Kind:      domain.KindRepeatedSection,
			Text:      "Details for system {item}",
			RepeatFor: KeySystems,
			Children: []domain.Question{
				{
					ID:       PrefixSystemPurpose + domain.ItemPlaceholder,
					Kind:     domain.KindText,
					Text:     "What is {item} used for?",
					Required: true,
				},
				{
					ID:          PrefixSystemResponsible + domain.ItemPlaceholder,
					Kind:        domain.KindText,
					Text:        "Which parties are responsible for {item} (comma separated)?",
					Required:    true,
					StoreAsList: true,
				},
			},
		},
		{
			ID:          KeyAdditionalResponsible,
			Kind:        domain.KindText,
			Text:        "List any additional responsible parties (comma separated):",
			StoreAsList: true,
		},
		{
			ID:      "responsible_processors",
			Kind:    domain.KindSpecial,
			Special: domain.SpecialResponsibleProcessors,
			Text:    "Assign at least one processor to every responsible party.",
		},
		{
			ID:          "data_parties",
			Kind:        domain.KindText,
			Text:        "List all parties involved in the data flow (comma separated):",
			Help:        "Include all organizations, individuals, or entities that interact with the data",
			Required:    true,
			StoreAsList: true,
		},
		{
			ID:        "party_details",
			Kind:      domain.KindRepeatedSection,
			Text:      "Details for party {item}",
			RepeatFor: "data_parties",
			Children: []domain.Question{
				{
					ID:   "party_role_" + domain.ItemPlaceholder,
					Kind: domain.KindSingleChoice,
					Text: "What role does {item} play in the data flow?",
					Help: "The role determines responsibilities under data protection regulations",
					Options: []string{
						"Data Controller", "Data Processor", "Joint Controller",
						"Data Subject", "Third Party Recipient",
					},
					Required: true,
				},
				{
					ID:       "party_location_" + domain.ItemPlaceholder,
					Kind:     domain.KindText,
					Text:     "Where is {item} located (country/region)?",
					Required: true,
				},
				{
					ID:        "party_process_" + domain.ItemPlaceholder,
					Kind:      domain.KindText,
					Text:      "What processing activities does {item} perform?",
					Required:  true,
					Multiline: true,
					Condition: &domain.Condition{
						QuestionID: "party_role_" + domain.ItemPlaceholder,
						Operator:   domain.OpIn,
						Value:      []string{"Data Controller", "Data Processor", "Joint Controller"},
					},
				},
			},
		},
		{
			ID:   "data_categories",
			Kind: domain.KindMultipleChoice,
			Text: "What categories of data are processed in this system?",
			Help: "Select all categories that apply to your system",
			Options: []string{
				"Personal Identifiers", "Contact Information", "Financial Data",
				"Health Data", "Biometric Data", "Location Data",
				"Online Identifiers", "Behavioral Data", "Demographic Data",
				"Professional Data", "Other",
			},
			Required: true,
		},
		{
			ID:       "other_data_categories",
			Kind:     domain.KindText,
			Text:     "Please specify other data categories:",
			Required: true,
			Condition: &domain.Condition{
				QuestionID: "data_categories",
				Operator:   domain.OpContains,
				Value:      "Other",
			},
		},
		{
			ID:          KeyDataTypes,
			Kind:        domain.KindText,
			Text:        "List all specific data types that flow through the system (comma separated):",
			Help:        "E.g., name, email, address, phone number, purchase history, etc.",
			Required:    true,
			StoreAsList: true,
		},
		{
			ID:        "data_type_details",
			Kind:      domain.KindRepeatedSection,
			Text:      "Details for data type {item}",
			RepeatFor: KeyDataTypes,
			Children: []domain.Question{
				{
					ID:   "data_sensitivity_" + domain.ItemPlaceholder,
					Kind: domain.KindSingleChoice,
					Text: "How sensitive is {item}?",
					Help: "Special categories include race, ethnicity, political opinions, religious beliefs, health data, etc.",
					Options: []string{
						"Personal Data",
						"Special Category (Sensitive) Personal Data",
						"Non-Personal Data",
					},
					Required: true,
				},
				{
					ID:   PrefixDataCategories + domain.ItemPlaceholder,
					Kind: domain.KindMultipleChoice,
					Text: "Which categories does {item} belong to?",
					Options: []string{
						"Personal Identifiers", "Contact Information", "Financial Data",
						"Health Data", "Biometric Data", "Location Data",
						"Online Identifiers", "Behavioral Data", "Demographic Data",
						"Professional Data",
					},
					Required: true,
				},
			},
		},
		{
			ID:   "processing_purposes",
			Kind: domain.KindMultipleChoice,
			Text: "On which legal bases is the data processed?",
			Options: []string{
				"Consent", "Contract", "Legal Obligation",
				"Vital Interests", "Public Interest", "Legitimate Interests",
			},
			Required: true,
		},
		{
			ID:          KeyPurposes,
			Kind:        domain.KindText,
			Text:        "List the concrete purposes of processing (comma separated):",
			Help:        "E.g., billing, marketing, support, analytics",
			Required:    true,
			StoreAsList: true,
		},
		{
			ID:      "processor_matrix",
			Kind:    domain.KindSpecial,
			Special: domain.SpecialProcessorMatrix,
			Text:    "Select which purposes and data types apply to each processor.",
		},
		{
			ID:   "subject_count",
			Kind: domain.KindNumber,
			Text: "Roughly how many data subjects are affected?",
		},
		{
			ID:   "dpo_appointed",
			Kind: domain.KindToggle,
			Text: "Is a data protection officer appointed?",
		},
		{
			ID:       "data_transfers",
			Kind:     domain.KindSingleChoice,
			Text:     "Are there any cross-border data transfers?",
			Options:  []string{"Yes", "No"},
			Required: true,
		},
		{
			ID:   "transfer_details",
			Kind: domain.KindSection,
			Text: "Cross-border transfer details",
			Condition: &domain.Condition{
				QuestionID: "data_transfers",
				Operator:   domain.OpEquals,
				Value:      "Yes",
			},
			Children: []domain.Question{
				{
					ID:          "transfer_countries",
					Kind:        domain.KindText,
					Text:        "List all countries involved in cross-border transfers (comma separated):",
					Required:    true,
					StoreAsList: true,
				},
				{
					ID:   "transfer_safeguards",
					Kind: domain.KindMultipleChoice,
					Text: "What safeguards are in place for these transfers?",
					Options: []string{
						"Standard Contractual Clauses", "Binding Corporate Rules",
						"Adequacy Decision", "Explicit Consent",
						"Derogations for Specific Situations", "None",
					},
					Required: true,
				},
			},
		},
		{
			ID:       "retention_period",
			Kind:     domain.KindText,
			Text:     "What is the data retention period?",
			Help:     "How long is the data kept before being deleted or anonymized?",
			Required: true,
		},
		{
			ID:   "security_measures",
			Kind: domain.KindMultipleChoice,
			Text: "What security measures are implemented?",
			Options: []string{
				"Encryption", "Access Controls", "Regular Audits",
				"Data Minimization", "Anonymization/Pseudonymization",
				"Backup and Recovery", "Incident Response Plan",
				"Staff Training", "Other",
			},
			Required: true,
		},
		{
			ID:       "security_other",
			Kind:     domain.KindText,
			Text:     "Please specify other security measures:",
			Required: true,
			Condition: &domain.Condition{
				QuestionID: "security_measures",
				Operator:   domain.OpContains,
				Value:      "Other",
			},
		},
	})
}
