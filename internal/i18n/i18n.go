// Package i18n holds the interface texts in German and English.
// German is the default language.
package i18n

import "strings"

// DefaultLanguage is used when a session carries no language code.
const DefaultLanguage = "de"

// Supported lists the available language codes.
var Supported = []string{"de", "en"}

// Text returns the message for a key in the given language. Unknown
// languages fall back to German; unknown keys return the key itself so a
// missing translation is visible instead of blank.
func Text(lang, key string) string {
	table, ok := messages[lang]
	if !ok {
		table = messages[DefaultLanguage]
	}
	if msg, ok := table[key]; ok {
		return msg
	}
	if msg, ok := messages[DefaultLanguage][key]; ok {
		return msg
	}
	return key
}

// Formatted returns the message with {placeholder} occurrences replaced.
// Replacements come in key/value pairs, e.g. Formatted("de", "progress",
// "current", "3", "total", "22").
func Formatted(lang, key string, pairs ...string) string {
	msg := Text(lang, key)
	for i := 0; i+1 < len(pairs); i += 2 {
		msg = strings.ReplaceAll(msg, "{"+pairs[i]+"}", pairs[i+1])
	}
	return msg
}

var messages = map[string]map[string]string{
	"de": {
		"app_title":           "Datenfluss-Analyse",
		"progress":            "Frage {current} von {total}",
		"completed":           "Fragebogen abgeschlossen.",
		"not_answered":        "Bitte beantworten Sie die Frage, bevor Sie fortfahren.",
		"empty_list":          "Bitte fügen Sie mindestens einen Eintrag hinzu.",
		"yes":                 "Ja",
		"no":                  "Nein",
		"back":                "Zurück",
		"next":                "Weiter",
		"summary_title":       "Zusammenfassung",
		"report_title":        "Empfehlungen zur Datenverarbeitung",
		"no_recommendations":  "Für die erfassten Antworten liegen keine Empfehlungen vor.",
		"diagram_title":       "Datenfluss-Diagramm",
		"diagram_fallback":    "Das Diagramm konnte nicht gerendert werden. Die Beschreibung wird stattdessen angezeigt.",
		"processors_label":    "Auftragsverarbeiter",
		"purpose_label":       "Zweck",
		"session_saved":       "Sitzung gespeichert unter {path}.",
		"session_loaded":      "Sitzung {id} geladen.",
		"import_failed":       "Der Import ist fehlgeschlagen: {reason}. Die aktuelle Sitzung bleibt unverändert.",
		"select_option":       "Bitte wählen Sie eine Option (1-{count}):",
		"select_multi":        "Bitte wählen Sie Optionen (z. B. 1,3), leer für keine:",
		"enter_number":        "Bitte geben Sie eine Zahl ein:",
		"enter_list":          "Bitte Werte durch Komma getrennt eingeben:",
		"assign_processors":   "Auftragsverarbeiter für {party} (durch Komma getrennt):",
		"matrix_cell":         "Gilt {purpose} / {data_type} für {processor}?",
	},
	"en": {
		"app_title":           "Data Flow Assessment",
		"progress":            "Question {current} of {total}",
		"completed":           "Questionnaire completed.",
		"not_answered":        "Please answer the question before continuing.",
		"empty_list":          "Please add at least one entry.",
		"yes":                 "Yes",
		"no":                  "No",
		"back":                "Back",
		"next":                "Next",
		"summary_title":       "Summary",
		"report_title":        "Data Processing Recommendations",
		"no_recommendations":  "No recommendations apply to the collected answers.",
		"diagram_title":       "Data Flow Diagram",
		"diagram_fallback":    "The diagram could not be rendered. Showing the description instead.",
		"processors_label":    "Processors",
		"purpose_label":       "Purpose",
		"session_saved":       "Session saved to {path}.",
		"session_loaded":      "Session {id} loaded.",
		"import_failed":       "Import failed: {reason}. The current session is unchanged.",
		"select_option":       "Please select an option (1-{count}):",
		"select_multi":        "Please select options (e.g. 1,3), empty for none:",
		"enter_number":        "Please enter a number:",
		"enter_list":          "Enter values separated by commas:",
		"assign_processors":   "Processors for {party} (comma separated):",
		"matrix_cell":         "Does {purpose} / {data_type} apply to {processor}?",
	},
}
