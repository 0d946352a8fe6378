// Package budget tracks the approximate token spend of one engine
// invocation. The estimate is a fixed tokens-per-line ratio, never real
// tokenization; the tracker bounds worst-case context growth rather than
// accounting precisely.
package budget

// Tracker accumulates estimated tokens for a single invocation. Once the
// ceiling is reached the invocation is terminally over budget; there is no
// recovery path.
type Tracker struct {
	maxTokens     int
	tokensPerLine int
	used          int
}

// NewTracker creates a tracker with the given ceiling and per-line ratio.
func NewTracker(maxTokens, tokensPerLine int) *Tracker {
	if tokensPerLine <= 0 {
		tokensPerLine = 1
	}
	return &Tracker{maxTokens: maxTokens, tokensPerLine: tokensPerLine}
}

// HasBudget reports whether further content may still be loaded.
func (t *Tracker) HasBudget() bool {
	return t.used < t.maxTokens
}

// Consume records the estimated token cost of the given line count.
func (t *Tracker) Consume(lineCount int) {
	if lineCount < 0 {
		return
	}
	t.used += lineCount * t.tokensPerLine
}

// Used returns the tokens consumed so far.
func (t *Tracker) Used() int {
	return t.used
}

// Estimate returns the token cost the tracker would charge for lineCount
// lines, without consuming it.
func (t *Tracker) Estimate(lineCount int) int {
	return lineCount * t.tokensPerLine
}
