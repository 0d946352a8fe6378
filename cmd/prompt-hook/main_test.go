package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupHookProject(t *testing.T) string {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	project := t.TempDir()

	if err := os.MkdirAll(filepath.Join(project, ".dochook"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(project, "docs", "core"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	rules := `rules:
  - keywords: [database]
    doc: core/DATABASE.md
`
	if err := os.WriteFile(filepath.Join(project, ".dochook", "rules.yaml"), []byte(rules), 0644); err != nil {
		t.Fatalf("write rules: %v", err)
	}
	if err := os.WriteFile(filepath.Join(project, "docs", "core", "DATABASE.md"), []byte("# Database\nschema notes\n"), 0644); err != nil {
		t.Fatalf("write doc: %v", err)
	}

	return project
}

func TestRunInjects(t *testing.T) {
	project := setupHookProject(t)

	out, err := run(project, "sess-1", "database question")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, `<doc path="core/DATABASE.md">`) {
		t.Errorf("expected doc block:\n%s", out)
	}
}

func TestRunNoRulesIsSilent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	project := t.TempDir()
	os.MkdirAll(filepath.Join(project, ".dochook"), 0755)

	out, err := run(project, "sess-1", "database question")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "" {
		t.Errorf("no rules must mean no output, got %q", out)
	}
}

func TestRunDedupsAcrossCalls(t *testing.T) {
	project := setupHookProject(t)

	if _, err := run(project, "sess-1", "database question"); err != nil {
		t.Fatalf("first run: %v", err)
	}
	out, err := run(project, "sess-1", "database again")
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if out != "" {
		t.Errorf("second call in the session must be silent, got:\n%s", out)
	}
}
