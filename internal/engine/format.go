package engine

import (
	"fmt"
	"strings"

	"dochook/internal/rules"
)

// Envelope markers. The consumer is a text-oriented prompt channel, so the
// exact line-level format is part of the contract.
const (
	openTag  = "<documentation-context>"
	closeTag = "</documentation-context>"

	// BudgetMarker replaces the content of every candidate dropped after
	// the token ceiling was reached.
	BudgetMarker = "<!-- dochook: token budget reached, remaining documents skipped -->"
)

// SectionNotFoundMarker flags the file-head fallback for a missing anchor.
func SectionNotFoundMarker(anchor string) string {
	return fmt.Sprintf("<!-- dochook: section %q not found, showing summary -->", anchor)
}

// block is one emitted document fragment.
type block struct {
	ref             rules.Ref
	lines           []string
	sectionNotFound bool
}

// envelope accumulates blocks for one invocation.
type envelope struct {
	blocks        []block
	budgetReached bool
}

func newEnvelope() *envelope {
	return &envelope{}
}

func (e *envelope) add(b block) {
	e.blocks = append(e.blocks, b)
}

func (e *envelope) count() int {
	return len(e.blocks)
}

// render serializes the envelope. Callers must not render an envelope with
// zero blocks; the no-output contract is enforced upstream.
func (e *envelope) render(tokensUsed int) string {
	var sb strings.Builder

	sb.WriteString(openTag)
	sb.WriteString("\n")

	for _, b := range e.blocks {
		if b.ref.Anchor != "" {
			fmt.Fprintf(&sb, "<doc path=%q anchor=%q>\n", b.ref.Path, b.ref.Anchor)
		} else {
			fmt.Fprintf(&sb, "<doc path=%q>\n", b.ref.Path)
		}
		if b.sectionNotFound {
			sb.WriteString(SectionNotFoundMarker(b.ref.Anchor))
			sb.WriteString("\n")
		}
		for _, line := range b.lines {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		sb.WriteString("</doc>\n")
	}

	if e.budgetReached {
		sb.WriteString(BudgetMarker)
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "<!-- dochook: %d document(s) loaded, ~%d tokens -->\n", len(e.blocks), tokensUsed)
	sb.WriteString(closeTag)
	sb.WriteString("\n")

	return sb.String()
}
