package rules

import (
	"reflect"
	"testing"
)

func TestParseRef(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want Ref
	}{
		{"core/DATABASE.md", Ref{Path: "core/DATABASE.md"}},
		{"core/DATABASE.md#queries", Ref{Path: "core/DATABASE.md", Anchor: "queries"}},
		{"ops/DEPLOY.md#", Ref{Path: "ops/DEPLOY.md", Anchor: ""}},
	}

	for _, tc := range cases {
		got := ParseRef(tc.in)
		if got != tc.want {
			t.Errorf("ParseRef(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestRefString(t *testing.T) {
	t.Parallel()

	ref := Ref{Path: "core/DATABASE.md", Anchor: "queries"}
	if got := ref.String(); got != "core/DATABASE.md#queries" {
		t.Errorf("String() = %q", got)
	}

	ref = Ref{Path: "core/DATABASE.md"}
	if got := ref.String(); got != "core/DATABASE.md" {
		t.Errorf("String() = %q", got)
	}
}

func TestRefEquality(t *testing.T) {
	t.Parallel()

	// A file ref and a section ref to the same file are distinct.
	file := Ref{Path: "core/DATABASE.md"}
	section := Ref{Path: "core/DATABASE.md", Anchor: "queries"}
	if file == section {
		t.Error("file ref and section ref should not be equal")
	}
}

func TestMatchDeclarationOrder(t *testing.T) {
	t.Parallel()

	table := []Rule{
		{Keywords: []string{"deploy"}, Target: Ref{Path: "ops/DEPLOY.md"}},
		{Keywords: []string{"database", "schema"}, Target: Ref{Path: "core/DATABASE.md"}},
		{Keywords: []string{"auth"}, Target: Ref{Path: "core/AUTH.md"}},
	}

	got := Match("how do I deploy the database migration?", table)
	want := []Ref{
		{Path: "ops/DEPLOY.md"},
		{Path: "core/DATABASE.md"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %+v, want %+v", got, want)
	}
}

func TestMatchCaseInsensitive(t *testing.T) {
	t.Parallel()

	table := []Rule{
		{Keywords: []string{"Database"}, Target: Ref{Path: "core/DATABASE.md"}},
	}

	if got := Match("what's the DATABASE schema?", table); len(got) != 1 {
		t.Errorf("expected 1 match, got %d", len(got))
	}
}

func TestMatchDeduplicatesTargets(t *testing.T) {
	t.Parallel()

	target := Ref{Path: "core/API.md"}
	table := []Rule{
		{Keywords: []string{"endpoint"}, Target: target},
		{Keywords: []string{"rest"}, Target: target},
	}

	got := Match("add a rest endpoint", table)
	if len(got) != 1 {
		t.Fatalf("expected 1 deduplicated match, got %d", len(got))
	}
	if got[0] != target {
		t.Errorf("got %+v", got[0])
	}
}

func TestMatchNotWordBounded(t *testing.T) {
	t.Parallel()

	// "api" inside "rapid" is a hit. Accepted behavior.
	table := []Rule{
		{Keywords: []string{"api"}, Target: Ref{Path: "core/API.md"}},
	}

	if got := Match("we need rapid iteration", table); len(got) != 1 {
		t.Errorf("substring matching should not be word-bounded, got %d matches", len(got))
	}
}

func TestMatchNoRulesHit(t *testing.T) {
	t.Parallel()

	table := []Rule{
		{Keywords: []string{"database"}, Target: Ref{Path: "core/DATABASE.md"}},
	}

	if got := Match("hello there", table); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestMatchEmptyKeywordIgnored(t *testing.T) {
	t.Parallel()

	table := []Rule{
		{Keywords: []string{""}, Target: Ref{Path: "core/ALL.md"}},
	}

	// An empty keyword would be a substring of everything; it must not fire.
	if got := Match("anything at all", table); got != nil {
		t.Errorf("empty keyword should never match, got %+v", got)
	}
}

func TestMatchAnchoredAndPlainAreDistinct(t *testing.T) {
	t.Parallel()

	table := []Rule{
		{Keywords: []string{"database"}, Target: Ref{Path: "core/DATABASE.md"}},
		{Keywords: []string{"queries"}, Target: Ref{Path: "core/DATABASE.md", Anchor: "queries"}},
	}

	got := Match("database queries are slow", table)
	if len(got) != 2 {
		t.Fatalf("expected 2 distinct refs, got %d", len(got))
	}
}
