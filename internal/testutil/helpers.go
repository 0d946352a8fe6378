// Package testutil provides reusable test utilities for dochook
// integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestEnv provides access to isolated test directories
type TestEnv struct {
	Home       string // Mocked HOME directory
	ProjectDir string // Test project directory
	GlobalDir  string // ~/.dochook equivalent
	ProjectCfg string // .dochook in project
	DocsDir    string // docs root in project
	t          *testing.T
}

// SetupTestEnv creates an isolated test environment with mocked HOME.
// Uses t.TempDir() for automatic cleanup and t.Setenv() for automatic env restoration.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpHome := t.TempDir()
	tmpProject := t.TempDir()

	globalDir := filepath.Join(tmpHome, ".dochook")
	projectCfg := filepath.Join(tmpProject, ".dochook")
	docsDir := filepath.Join(tmpProject, "docs")

	for _, dir := range []string{globalDir, projectCfg, docsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	// Set HOME to temp directory (auto-restored after test)
	t.Setenv("HOME", tmpHome)

	return &TestEnv{
		Home:       tmpHome,
		ProjectDir: tmpProject,
		GlobalDir:  globalDir,
		ProjectCfg: projectCfg,
		DocsDir:    docsDir,
		t:          t,
	}
}

// CreateFile creates a file with the given content, relative to the
// project directory unless absolute.
func (e *TestEnv) CreateFile(path, content string) {
	e.t.Helper()

	fullPath := path
	if !filepath.IsAbs(path) {
		fullPath = filepath.Join(e.ProjectDir, path)
	}

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		e.t.Fatalf("Failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write file %s: %v", fullPath, err)
	}
}

// CreateDoc creates a markdown document under the project docs root.
func (e *TestEnv) CreateDoc(relPath, content string) {
	e.t.Helper()
	e.CreateFile(filepath.Join("docs", filepath.FromSlash(relPath)), content)
}

// CreateRules writes the project rules table.
func (e *TestEnv) CreateRules(yaml string) {
	e.t.Helper()
	e.CreateFile(filepath.Join(".dochook", "rules.yaml"), yaml)
}

// CreateProjectConfig writes the project configuration.
func (e *TestEnv) CreateProjectConfig(yaml string) {
	e.t.Helper()
	e.CreateFile(filepath.Join(".dochook", "config.yaml"), yaml)
}

// SessionDB returns the default session database path under the mocked HOME.
func (e *TestEnv) SessionDB() string {
	return filepath.Join(e.GlobalDir, "session.db")
}

// FileExists checks if a file exists in the test environment.
func (e *TestEnv) FileExists(path string) bool {
	e.t.Helper()

	fullPath := path
	if !filepath.IsAbs(path) {
		fullPath = filepath.Join(e.ProjectDir, path)
	}

	_, err := os.Stat(fullPath)
	return err == nil
}
