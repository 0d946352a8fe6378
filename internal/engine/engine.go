package engine

import (
	"strings"

	"dochook/internal/budget"
	"dochook/internal/config"
	"dochook/internal/docs"
	"dochook/internal/rules"
	"dochook/internal/session"
)

// Engine runs one context-enrichment invocation against a project's rule
// table and documentation root.
type Engine struct {
	store    *docs.Store
	sessions session.Store
	table    []rules.Rule
	cfg      *config.Config
}

// New creates an engine. The session store is shared across invocations;
// everything else is per-invocation static data.
func New(store *docs.Store, sessions session.Store, table []rules.Rule, cfg *config.Config) *Engine {
	return &Engine{
		store:    store,
		sessions: sessions,
		table:    table,
		cfg:      cfg,
	}
}

// Enrich matches the prompt and returns the formatted envelope, or the
// empty string when there is nothing to inject. The empty string means the
// caller must emit no output at all.
//
// Enrich never returns an error for missing documents, missing sections or
// budget exhaustion; those are in-band conditions. Only session-store
// failures surface, and callers are expected to drop them silently.
func (e *Engine) Enrich(sessionID, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", nil
	}

	matched := rules.Match(prompt, e.table)
	if len(matched) == 0 {
		return "", nil
	}

	// Session dedup filter. A store read failure counts as not loaded:
	// injecting twice is better than not injecting at all.
	var pending []rules.Ref
	for _, ref := range matched {
		loaded, err := e.sessions.IsLoaded(sessionID, ref.String())
		if err == nil && loaded {
			continue
		}
		pending = append(pending, ref)
	}
	if len(pending) == 0 {
		return "", nil
	}

	tracker := budget.NewTracker(e.cfg.Budget.MaxTokens, e.cfg.Budget.TokensPerLine)
	env := newEnvelope()

	for _, ref := range pending {
		if !tracker.HasBudget() {
			// Remaining refs are neither loaded nor marked; a later
			// invocation in the session may still inject them.
			env.budgetReached = true
			break
		}

		lines, err := e.store.Load(ref.Path)
		if err != nil {
			// Missing document: silent skip, no marker, no marking.
			continue
		}

		body := e.extract(ref, lines)
		tracker.Consume(len(body.lines))
		env.add(body)

		if err := e.sessions.MarkLoaded(sessionID, ref.String()); err != nil {
			// Best effort; the document is already in the output.
			continue
		}
	}

	if env.count() == 0 {
		return "", nil
	}

	return env.render(tracker.Used()), nil
}

// extract resolves a reference into its bounded content.
func (e *Engine) extract(ref rules.Ref, lines []string) block {
	if ref.Anchor != "" {
		section, found := docs.Extract(lines, ref.Anchor, e.cfg.Docs.MaxSectionLines)
		if found {
			return block{ref: ref, lines: section}
		}
		// Section missing: fall back to the head of the file, flagged so
		// the reader knows this is a summary, not the requested section.
		return block{
			ref:             ref,
			lines:           docs.Head(lines, e.cfg.Docs.MaxSectionLines),
			sectionNotFound: true,
		}
	}

	return block{ref: ref, lines: docs.Head(lines, e.cfg.Docs.MaxFileLines)}
}
