package rules

import "strings"

// Rule maps a set of trigger keywords to one documentation target.
type Rule struct {
	Keywords []string
	Target   Ref
}

// Match tests every rule against the prompt and returns the targets of the
// rules that hit, in declaration order, duplicates removed.
//
// The prompt is lowercased once; keywords are matched as plain substrings.
// Evaluation never stops early: a later rule pointing at an already-matched
// target is a no-op, but its position cannot promote or demote the target.
func Match(prompt string, table []Rule) []Ref {
	lowered := strings.ToLower(prompt)

	var refs []Ref
	seen := make(map[Ref]bool)

	for _, rule := range table {
		if !rule.matches(lowered) {
			continue
		}
		if seen[rule.Target] {
			continue
		}
		seen[rule.Target] = true
		refs = append(refs, rule.Target)
	}

	return refs
}

func (r Rule) matches(lowered string) bool {
	for _, kw := range r.Keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
