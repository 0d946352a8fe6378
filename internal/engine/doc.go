// Package engine orchestrates one enrichment invocation: match the prompt
// against the rule table, filter through the session dedup store, load and
// extract bounded document fragments under the token budget, and format the
// output envelope.
//
// Every recoverable condition is handled in-band: missing documents are
// skipped silently, a missing section falls back to a file-head summary
// with a visible marker, and budget exhaustion appends a single marker and
// stops the loop. The engine never aborts the hosting interaction. When
// nothing survives matching and dedup it produces no output at all, not an
// empty envelope; the caller depends on that to avoid injecting an empty
// block.
package engine
