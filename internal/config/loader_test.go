package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Version != "1" {
		t.Errorf("Expected version '1', got '%s'", cfg.Version)
	}
	if cfg.Docs.Root != "docs" {
		t.Errorf("Expected docs root 'docs', got '%s'", cfg.Docs.Root)
	}
	if cfg.Docs.MaxFileLines != 200 {
		t.Errorf("Expected max_file_lines 200, got %d", cfg.Docs.MaxFileLines)
	}
	if cfg.Docs.MaxSectionLines != 80 {
		t.Errorf("Expected max_section_lines 80, got %d", cfg.Docs.MaxSectionLines)
	}
	if cfg.Budget.MaxTokens != 2000 {
		t.Errorf("Expected max_tokens 2000, got %d", cfg.Budget.MaxTokens)
	}
	if cfg.Budget.TokensPerLine != 10 {
		t.Errorf("Expected tokens_per_line 10, got %d", cfg.Budget.TokensPerLine)
	}
	if cfg.Session.Backend != "sqlite" {
		t.Errorf("Expected sqlite backend, got '%s'", cfg.Session.Backend)
	}
}

func TestLoadMissingFilesReturnsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Budget.MaxTokens != 2000 {
		t.Errorf("expected defaults, got max_tokens %d", cfg.Budget.MaxTokens)
	}
}

func TestLoadProjectOverridesGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	globalDir := filepath.Join(home, ".dochook")
	os.MkdirAll(globalDir, 0755)
	os.WriteFile(filepath.Join(globalDir, "config.yaml"), []byte(`
budget:
  max_tokens: 500
docs:
  max_file_lines: 50
`), 0644)

	project := t.TempDir()
	projectDir := filepath.Join(project, ".dochook")
	os.MkdirAll(projectDir, 0755)
	os.WriteFile(filepath.Join(projectDir, "config.yaml"), []byte(`
budget:
  max_tokens: 900
`), 0644)

	cfg, err := Load(project)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Budget.MaxTokens != 900 {
		t.Errorf("project should override global: max_tokens = %d, want 900", cfg.Budget.MaxTokens)
	}
	if cfg.Docs.MaxFileLines != 50 {
		t.Errorf("global value should survive: max_file_lines = %d, want 50", cfg.Docs.MaxFileLines)
	}
}

func TestLoadAutoDetectsProjectName(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	project := filepath.Join(t.TempDir(), "myservice")
	os.MkdirAll(project, 0755)

	cfg, err := Load(project)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Project.Name != "myservice" {
		t.Errorf("Project.Name = %q, want 'myservice'", cfg.Project.Name)
	}
}

func TestDocsRoot(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if got := cfg.DocsRoot("/proj"); got != filepath.Join("/proj", "docs") {
		t.Errorf("DocsRoot = %q", got)
	}

	cfg.Docs.Root = "/abs/docs"
	if got := cfg.DocsRoot("/proj"); got != "/abs/docs" {
		t.Errorf("absolute root should win, got %q", got)
	}
}

func TestWriteDefaultRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	globalDir := filepath.Join(home, ".dochook")
	os.MkdirAll(globalDir, 0755)
	if err := WriteDefault(filepath.Join(globalDir, "config.yaml")); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Docs.MaxSectionLines != 80 {
		t.Errorf("written defaults should parse back: max_section_lines = %d", cfg.Docs.MaxSectionLines)
	}
}
