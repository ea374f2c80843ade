package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/fbruhn/datakompass/internal/i18n"
	"github.com/fbruhn/datakompass/pkg/catalog"
	"github.com/fbruhn/datakompass/pkg/domain"
	"github.com/fbruhn/datakompass/pkg/engine"
)

type action int

const (
	actionNone action = iota
	actionBack
	actionQuit
)

// prompter collects answers for one catalog node from stdin. The inputs
// ":back" and ":quit" are commands on every prompt.
type prompter struct {
	in   *bufio.Scanner
	lang string
}

// ask renders the question and records the answer(s) on the traversal.
func (p *prompter) ask(q domain.Question, trav *engine.Traversal) (action, error) {
	switch q.Kind {
	case domain.KindSection:
		fmt.Printf("\n== %s ==\n", q.Text)
		for _, child := range q.Children {
			if !trav.Evaluator().ShouldShow(child, trav.Answers()) {
				continue
			}
			if act, err := p.ask(child, trav); act != actionNone || err != nil {
				return act, err
			}
		}
		return actionNone, nil

	case domain.KindRepeatedSection:
		for _, item := range catalog.Items(trav.Answers().List(q.RepeatFor)) {
			fmt.Printf("\n== %s ==\n", strings.ReplaceAll(q.Text, domain.ItemPlaceholder, item))
			for _, child := range q.Children {
				inst := catalog.Instantiate(child, item)
				if !trav.Evaluator().ShouldShow(inst, trav.Answers()) {
					continue
				}
				if act, err := p.ask(inst, trav); act != actionNone || err != nil {
					return act, err
				}
			}
		}
		return actionNone, nil

	case domain.KindSpecial:
		return p.askSpecial(q, trav)

	default:
		return p.askScalar(q, trav)
	}
}

func (p *prompter) askScalar(q domain.Question, trav *engine.Traversal) (action, error) {
	fmt.Println(q.Text)
	if q.Help != "" {
		fmt.Printf("  (%s)\n", q.Help)
	}

	switch q.Kind {
	case domain.KindText:
		if q.StoreAsList {
			fmt.Println(i18n.Text(p.lang, "enter_list"))
		}
		line, act := p.readLine("> ")
		if act != actionNone {
			return act, nil
		}
		var value any = line
		if q.StoreAsList {
			value = splitList(line)
		}
		return actionNone, trav.Answer(q.ID, value)

	case domain.KindSingleChoice:
		for i, opt := range q.Options {
			fmt.Printf("  %d) %s\n", i+1, opt)
		}
		fmt.Println(i18n.Formatted(p.lang, "select_option", "count", fmt.Sprint(len(q.Options))))
		for {
			line, act := p.readLine("> ")
			if act != actionNone {
				return act, nil
			}
			if line == "" {
				// First option is the default, matching how a rendered
				// radio group always carries a selection.
				return actionNone, trav.Answer(q.ID, q.Options[0])
			}
			if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(q.Options) {
				return actionNone, trav.Answer(q.ID, q.Options[n-1])
			}
		}

	case domain.KindMultipleChoice:
		for i, opt := range q.Options {
			fmt.Printf("  %d) %s\n", i+1, opt)
		}
		fmt.Println(i18n.Text(p.lang, "select_multi"))
		line, act := p.readLine("> ")
		if act != actionNone {
			return act, nil
		}
		var selected []string
		for _, part := range splitList(line) {
			if n, err := strconv.Atoi(part); err == nil && n >= 1 && n <= len(q.Options) {
				selected = append(selected, q.Options[n-1])
			}
		}
		if selected == nil {
			selected = []string{}
		}
		return actionNone, trav.Answer(q.ID, selected)

	case domain.KindNumber:
		fmt.Println(i18n.Text(p.lang, "enter_number"))
		for {
			line, act := p.readLine("> ")
			if act != actionNone {
				return act, nil
			}
			if line == "" {
				return actionNone, trav.Answer(q.ID, float64(0))
			}
			if n, err := strconv.ParseFloat(line, 64); err == nil {
				return actionNone, trav.Answer(q.ID, n)
			}
		}

	case domain.KindToggle:
		line, act := p.readLine(fmt.Sprintf("[%s/%s] > ", i18n.Text(p.lang, "yes"), i18n.Text(p.lang, "no")))
		if act != actionNone {
			return act, nil
		}
		return actionNone, trav.Answer(q.ID, isYes(line))
	}
	return actionNone, nil
}

func (p *prompter) askSpecial(q domain.Question, trav *engine.Traversal) (action, error) {
	fmt.Printf("\n== %s ==\n", q.Text)
	switch q.Special {
	case domain.SpecialResponsibleProcessors:
		parties := engine.ResponsibleParties(trav.Answers())
		if len(parties) == 0 {
			fmt.Println(i18n.Text(p.lang, "empty_list"))
			return actionNone, nil
		}
		for _, party := range parties {
			fmt.Println(i18n.Formatted(p.lang, "assign_processors", "party", party))
			line, act := p.readLine("> ")
			if act != actionNone {
				return act, nil
			}
			if err := trav.Answer(catalog.PrefixProcessors+party, splitList(line)); err != nil {
				return actionNone, err
			}
		}
		return actionNone, nil

	case domain.SpecialProcessorMatrix:
		ans := trav.Answers()
		processors := engine.Processors(ans)
		purposes := ans.List(catalog.KeyPurposes)
		dataTypes := ans.List(catalog.KeyDataTypes)
		if len(processors) == 0 || len(purposes) == 0 || len(dataTypes) == 0 {
			fmt.Println(i18n.Text(p.lang, "empty_list"))
			return actionNone, nil
		}
		for _, processor := range processors {
			for _, purpose := range purposes {
				for _, dataType := range dataTypes {
					prompt := i18n.Formatted(p.lang, "matrix_cell",
						"purpose", purpose, "data_type", dataType, "processor", processor)
					fmt.Println(prompt)
					line, act := p.readLine(fmt.Sprintf("[%s/%s] > ", i18n.Text(p.lang, "yes"), i18n.Text(p.lang, "no")))
					if act != actionNone {
						return act, nil
					}
					if err := trav.Answer(catalog.MatrixKey(processor, purpose, dataType), isYes(line)); err != nil {
						return actionNone, err
					}
				}
			}
		}
		return actionNone, nil
	}
	return actionNone, nil
}

// readLine reads one trimmed line, translating navigation commands.
func (p *prompter) readLine(prompt string) (string, action) {
	fmt.Print(prompt)
	if !p.in.Scan() {
		return "", actionQuit
	}
	line := strings.TrimSpace(p.in.Text())
	switch line {
	case ":back", ":b":
		return "", actionBack
	case ":quit", ":q":
		return "", actionQuit
	}
	return line, actionNone
}

func splitList(line string) []string {
	var items []string
	for _, part := range strings.Split(line, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func isYes(line string) bool {
	switch strings.ToLower(line) {
	case "y", "yes", "j", "ja", "true", "1":
		return true
	}
	return false
}
