package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fbruhn/datakompass/pkg/answers"
	"github.com/fbruhn/datakompass/pkg/catalog"
	"github.com/fbruhn/datakompass/pkg/domain"
)

// SummaryRow is one line of the flattened assessment summary.
type SummaryRow struct {
	QuestionID string `json:"question_id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}

// Summarize flattens the catalog into question/answer rows for the
// collected answers. Visibility rules match live traversal: hidden
// questions do not appear, repeated sections expand per list item, and
// the special collectors render their derived structures. Unanswered
// visible questions appear with an empty answer so gaps are reviewable.
func Summarize(cat *catalog.Catalog, ans *answers.Store, ev *Evaluator) []SummaryRow {
	if ev == nil {
		ev = NewEvaluator(nil)
	}
	var rows []SummaryRow
	for _, q := range cat.Questions() {
		rows = appendRows(rows, q, ans, ev)
	}
	return rows
}

func appendRows(rows []SummaryRow, q domain.Question, ans *answers.Store, ev *Evaluator) []SummaryRow {
	if !ev.ShouldShow(q, ans) {
		return rows
	}

	switch q.Kind {
	case domain.KindSection:
		for _, child := range q.Children {
			rows = appendRows(rows, child, ans, ev)
		}
		return rows

	case domain.KindRepeatedSection:
		for _, item := range catalog.Items(ans.List(q.RepeatFor)) {
			for _, child := range q.Children {
				rows = appendRows(rows, catalog.Instantiate(child, item), ans, ev)
			}
		}
		return rows

	case domain.KindSpecial:
		return append(rows, specialRows(q, ans)...)

	default:
		return append(rows, SummaryRow{
			QuestionID: q.ID,
			Question:   q.Text,
			Answer:     FormatAnswer(q, ans),
		})
	}
}

// specialRows renders the derived party and matrix structures as one row
// per party respectively per processor.
func specialRows(q domain.Question, ans *answers.Store) []SummaryRow {
	var rows []SummaryRow
	switch q.Special {
	case domain.SpecialResponsibleProcessors:
		for _, party := range ResponsibleParties(ans) {
			rows = append(rows, SummaryRow{
				QuestionID: catalog.PrefixProcessors + party,
				Question:   fmt.Sprintf("%s: %s", q.Text, party),
				Answer:     strings.Join(ans.List(catalog.PrefixProcessors+party), ", "),
			})
		}
	case domain.SpecialProcessorMatrix:
		purposes := ans.List(catalog.KeyPurposes)
		dataTypes := ans.List(catalog.KeyDataTypes)
		for _, processor := range Processors(ans) {
			var cells []string
			for _, purpose := range purposes {
				for _, dataType := range dataTypes {
					if ans.Bool(catalog.MatrixKey(processor, purpose, dataType)) {
						cells = append(cells, fmt.Sprintf("%s / %s", purpose, dataType))
					}
				}
			}
			rows = append(rows, SummaryRow{
				QuestionID: "matrix_" + processor,
				Question:   fmt.Sprintf("%s: %s", q.Text, processor),
				Answer:     strings.Join(cells, ", "),
			})
		}
	}
	return rows
}

// FormatAnswer renders a stored answer as display text. Lists join with
// ", ", numbers drop trailing zeros, and toggles render yes/no.
func FormatAnswer(q domain.Question, ans *answers.Store) string {
	value, ok := ans.Get(q.ID)
	if !ok {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "yes"
		}
		return "no"
	default:
		return fmt.Sprintf("%v", v)
	}
}
