package rules

import "strings"

// Ref identifies a documentation target: a whole file, or one
// header-delimited section of it when Anchor is set.
//
// A file reference and a section reference to the same file are distinct
// entities; dedup and equality always consider both fields.
type Ref struct {
	Path   string
	Anchor string
}

// ParseRef parses the canonical "path" or "path#anchor" form.
func ParseRef(s string) Ref {
	path, anchor, found := strings.Cut(s, "#")
	if !found {
		return Ref{Path: path}
	}
	return Ref{Path: path, Anchor: anchor}
}

// String returns the canonical form used as the dedup store key.
func (r Ref) String() string {
	if r.Anchor == "" {
		return r.Path
	}
	return r.Path + "#" + r.Anchor
}
