package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/fbruhn/datakompass/internal/i18n"
	"github.com/fbruhn/datakompass/internal/presentation/tui"
	"github.com/fbruhn/datakompass/pkg/catalog"
	"github.com/fbruhn/datakompass/pkg/domain"
	"github.com/fbruhn/datakompass/pkg/engine"
	"github.com/fbruhn/datakompass/pkg/rules"
	"github.com/fbruhn/datakompass/pkg/session"
)

// RunSession drives one interactive questionnaire on stdin/stdout.
// The session is persisted after every navigation step, so an
// interrupted run resumes where it left off.
func RunSession(ctx context.Context, cat *catalog.Catalog, manager *session.Manager, opts RunOptions, logger *slog.Logger) error {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		tui.PrintBanner()
	}

	state, err := manager.LoadOrStart(ctx, opts.SessionID, opts.Language)
	if err != nil {
		return fmt.Errorf("failed to init session: %w", err)
	}
	lang := state.Language
	printSystemMessage("%s", i18n.Formatted(lang, "session_loaded", "id", opts.SessionID))

	trav := engine.NewTraversal(cat, state, engine.WithLogger(logger))
	p := &prompter{in: bufio.NewScanner(os.Stdin), lang: lang}

	for {
		if err := ctx.Err(); err != nil {
			// Interrupted; the last persisted step survives.
			return nil
		}

		q, ok := trav.Current()
		if !ok {
			break
		}

		current, total := trav.Progress()
		fmt.Printf("\n[%s]\n", i18n.Formatted(lang, "progress", "current", fmt.Sprint(current), "total", fmt.Sprint(total)))

		action, err := p.ask(q, trav)
		if err != nil {
			return err
		}
		switch action {
		case actionBack:
			trav.Retreat()
		case actionQuit:
			return manager.Save(ctx, opts.SessionID, state)
		default:
			if err := trav.Advance(); err != nil {
				if errors.Is(err, domain.ErrNotAnswered) {
					fmt.Println(i18n.Text(lang, "not_answered"))
					continue
				}
				return err
			}
		}

		if err := manager.Save(ctx, opts.SessionID, state); err != nil {
			return fmt.Errorf("failed to persist session: %w", err)
		}
	}

	fmt.Println("\n" + i18n.Text(lang, "completed"))
	return finishSession(ctx, cat, manager, trav, opts, lang)
}

// finishSession renders the summary and the recommendation report, then
// exports the snapshot next to the session store.
func finishSession(ctx context.Context, cat *catalog.Catalog, manager *session.Manager, trav *engine.Traversal, opts RunOptions, lang string) error {
	render := tui.NewRenderer()

	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", i18n.Text(lang, "summary_title"))
	for _, row := range engine.Summarize(cat, trav.Answers(), trav.Evaluator()) {
		fmt.Fprintf(&md, "- **%s** %s\n", row.Question, row.Answer)
	}

	ruleEngine := rules.NewEngine()
	var report strings.Builder
	_ = rules.WriteMarkdown(&report, i18n.Text(lang, "report_title"), ruleEngine.Evaluate(trav.Answers()))

	for _, text := range []string{md.String(), report.String()} {
		if out, err := render(text); err == nil {
			fmt.Print(out)
		} else {
			fmt.Println(text)
		}
	}

	if err := manager.Save(ctx, opts.SessionID, trav.State()); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	return exportSnapshot(trav, opts, lang)
}

func exportSnapshot(trav *engine.Traversal, opts RunOptions, lang string) error {
	name := session.Filename(trav.Answers(), trav.State().UpdatedAt)
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := session.Export(f, trav.State()); err != nil {
		return err
	}
	printSystemMessage("%s", i18n.Formatted(lang, "session_saved", "path", name))
	return nil
}
