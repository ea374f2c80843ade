package rules

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown renders suggestions as structured text: one heading and
// description per suggestion with its recommendations as bullets.
func WriteMarkdown(w io.Writer, title string, suggestions []Suggestion) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if len(suggestions) == 0 {
		b.WriteString("No recommendations apply to the collected answers.\n")
	}
	for _, s := range suggestions {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", s.Title, s.Description)
		for _, rec := range s.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteCSV renders suggestions as flat rows, one per recommendation,
// repeating the suggestion title and description on each row.
func WriteCSV(w io.Writer, suggestions []Suggestion) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "title", "description", "recommendation"}); err != nil {
		return err
	}
	for _, s := range suggestions {
		for _, rec := range s.Recommendations {
			if err := cw.Write([]string{s.ID, s.Title, s.Description, rec}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON renders the suggestion sequence as a JSON array.
func WriteJSON(w io.Writer, suggestions []Suggestion) error {
	if suggestions == nil {
		suggestions = []Suggestion{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(suggestions)
}
