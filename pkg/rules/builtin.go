package rules

import (
	"fmt"
	"strings"

	"github.com/fbruhn/datakompass/pkg/answers"
	"github.com/fbruhn/datakompass/pkg/catalog"
)

// euMarkers identify a party location inside GDPR territorial scope.
// Matching is case-insensitive substring so free-text entries like
// "Germany (EU)" or "EEA / Norway" qualify.
var euMarkers = []string{"eu", "eea", "european union", "europe"}

// Builtin returns the compiled-in rule table, in presentation order.
func Builtin() []Rule {
	return []Rule{
		{
			ID:          "gdpr_applicability",
			Title:       "GDPR Applicability",
			Description: "At least one party is located in the EU/EEA, so the GDPR applies to this processing.",
			When:        anyPartyInEU,
			Recommendations: []Recommendation{
				Static("Maintain a record of processing activities (Art. 30 GDPR)."),
				Static("Verify a legal basis exists for every processing purpose (Art. 6 GDPR)."),
				Static("Ensure data subjects can exercise their rights (Art. 12-23 GDPR)."),
			},
		},
		{
			ID:          "special_category_data",
			Title:       "Special Category Data",
			Description: "Special category (sensitive) personal data is processed, which requires an explicit Art. 9 exception.",
			When:        anySpecialCategoryData,
			Recommendations: []Recommendation{
				Static("Document which Art. 9(2) GDPR exception permits this processing."),
				Static("Carry out a Data Protection Impact Assessment (Art. 35 GDPR)."),
				Static("Apply stricter access controls to the sensitive data."),
			},
		},
		{
			ID:          "consent_management",
			Title:       "Consent Management",
			Description: "Processing relies on consent as a legal basis.",
			When: func(ans *answers.Store) bool {
				return containsItem(ans.List("processing_purposes"), "Consent")
			},
			Recommendations: []Recommendation{
				Static("Document consent basis"),
				Static("Provide an easy way to withdraw consent at any time."),
				Static("Keep proof of when and how consent was obtained."),
			},
		},
		{
			ID:          "data_processor_agreements",
			Title:       "Data Processor Agreements",
			Description: "External data processors are involved; processing on behalf of a controller requires a contract.",
			When:        anyPartyIsProcessor,
			Recommendations: []Recommendation{
				processorAgreementList,
				Static("Verify each processor provides sufficient guarantees (Art. 28 GDPR)."),
			},
		},
		{
			ID:          "cross_border_transfers",
			Title:       "Cross-Border Transfers",
			Description: "Data crosses borders; transfers outside the EU/EEA need a valid transfer mechanism.",
			When: func(ans *answers.Store) bool {
				return ans.String("data_transfers") == "Yes"
			},
			Recommendations: []Recommendation{
				transferCountriesLine,
				Static("Check whether an adequacy decision covers the destination countries."),
				Static("Where no adequacy decision exists, put Standard Contractual Clauses in place."),
			},
		},
		{
			ID:          "data_retention",
			Title:       "Data Retention",
			Description: "Data must not be kept longer than necessary for its purpose.",
			When: func(ans *answers.Store) bool {
				return ans.String("retention_period") != ""
			},
			Recommendations: []Recommendation{
				func(ans *answers.Store) string {
					return fmt.Sprintf("Enforce the stated retention period (%s) with automated deletion or anonymization.", ans.String("retention_period"))
				},
				Static("Review retention periods regularly against legal requirements."),
			},
		},
		{
			ID:          "access_controls",
			Title:       "Access Controls",
			Description: "No access controls are listed among the security measures.",
			When: func(ans *answers.Store) bool {
				measures := ans.List("security_measures")
				return len(measures) > 0 && !containsItem(measures, "Access Controls")
			},
			Recommendations: []Recommendation{
				Static("Introduce role-based access controls limiting data access to those who need it."),
				Static("Log and review access to personal data."),
			},
		},
		{
			ID:          "encryption",
			Title:       "Encryption",
			Description: "No encryption is listed among the security measures.",
			When: func(ans *answers.Store) bool {
				measures := ans.List("security_measures")
				return len(measures) > 0 && !containsItem(measures, "Encryption")
			},
			Recommendations: []Recommendation{
				Static("Encrypt personal data at rest and in transit."),
			},
		},
		{
			ID:          "data_protection_officer",
			Title:       "Data Protection Officer",
			Description: "The scale or sensitivity of processing suggests a data protection officer is needed, but none is appointed.",
			When: func(ans *answers.Store) bool {
				if ans.Bool("dpo_appointed") {
					return false
				}
				return ans.Number("subject_count") >= 10000 || anySpecialCategoryData(ans)
			},
			Recommendations: []Recommendation{
				Static("Assess whether Art. 37 GDPR obliges you to appoint a data protection officer."),
				Static("If appointed, publish the DPO's contact details and report them to the supervisory authority."),
			},
		},
		{
			ID:          "incident_response",
			Title:       "Incident Response",
			Description: "Every processing operation needs a plan for personal data breaches.",
			When:        func(*answers.Store) bool { return true },
			Recommendations: []Recommendation{
				Static("Define a breach notification process meeting the 72-hour deadline (Art. 33 GDPR)."),
				Static("Test the incident response plan at least annually."),
			},
		},
	}
}

func containsItem(list []string, item string) bool {
	for _, v := range list {
		if v == item {
			return true
		}
	}
	return false
}

// partyIDs returns every party known to the answer store: the collected
// data-flow parties plus the derived responsible parties.
func partyIDs(ans *answers.Store) []string {
	var parties []string
	seen := make(map[string]bool)
	add := func(p string) {
		if p == "" || seen[p] {
			return
		}
		seen[p] = true
		parties = append(parties, p)
	}
	for _, p := range ans.List("data_parties") {
		add(p)
	}
	for _, key := range ans.KeysWithPrefix(catalog.PrefixSystemResponsible) {
		for _, p := range ans.List(key) {
			add(p)
		}
	}
	for _, p := range ans.List(catalog.KeyAdditionalResponsible) {
		add(p)
	}
	return parties
}

func anyPartyInEU(ans *answers.Store) bool {
	for _, party := range partyIDs(ans) {
		location := strings.ToLower(ans.String("party_location_" + party))
		if location == "" {
			continue
		}
		for _, marker := range euMarkers {
			if strings.Contains(location, marker) {
				return true
			}
		}
	}
	return false
}

func anyPartyIsProcessor(ans *answers.Store) bool {
	for _, party := range partyIDs(ans) {
		if ans.String("party_role_"+party) == "Data Processor" {
			return true
		}
	}
	return false
}

func anySpecialCategoryData(ans *answers.Store) bool {
	for _, dataType := range ans.List(catalog.KeyDataTypes) {
		if strings.HasPrefix(ans.String("data_sensitivity_"+dataType), "Special Category") {
			return true
		}
	}
	return false
}

func processorAgreementList(ans *answers.Store) string {
	var processors []string
	for _, party := range partyIDs(ans) {
		if ans.String("party_role_"+party) == "Data Processor" {
			processors = append(processors, party)
		}
	}
	return fmt.Sprintf("Conclude a data processing agreement (Art. 28 GDPR) with: %s.", strings.Join(processors, ", "))
}

func transferCountriesLine(ans *answers.Store) string {
	countries := ans.List("transfer_countries")
	if len(countries) == 0 {
		return "Document the destination countries of all cross-border transfers."
	}
	return fmt.Sprintf("Document the transfer mechanism for each destination country: %s.", strings.Join(countries, ", "))
}
