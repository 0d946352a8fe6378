package config

import (
	"os"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Docs: DocsConfig{
			Root:            "docs",
			MaxFileLines:    200,
			MaxSectionLines: 80,
		},
		Budget: BudgetConfig{
			MaxTokens:     2000,
			TokensPerLine: 10,
		},
		Session: SessionConfig{
			Backend: "sqlite",
		},
	}
}

// WriteDefault writes the default global configuration to a file
func WriteDefault(path string) error {
	content := `# dochook Global Configuration
version: "1"

# Documentation store
docs:
  root: docs              # documentation root, relative to the project
  max_file_lines: 200     # cap for a whole-file load
  max_section_lines: 80   # cap for a section load

# Per-invocation token budget (approximate, line-count derived)
budget:
  max_tokens: 2000
  tokens_per_line: 10

# Session dedup store
session:
  backend: sqlite  # "sqlite" (persists across hook invocations) or "memory"
`
	return os.WriteFile(path, []byte(content), 0644)
}

// WriteProjectDefault writes the default project configuration to a file
func WriteProjectDefault(path string) error {
	content := `# dochook Project Configuration
version: "1"

# Project information
project:
  name: ""  # Auto-detected from directory name if empty

# Override global settings as needed
# docs:
#   root: docs
#   max_file_lines: 200
#   max_section_lines: 80
# budget:
#   max_tokens: 2000
`
	return os.WriteFile(path, []byte(content), 0644)
}

// WriteDefaultRules writes a starter rules table to a file
func WriteDefaultRules(path string) error {
	content := `# dochook keyword rules
#
# Rules are evaluated in order; every rule is tested and a prompt may match
# several. Keywords are case-insensitive substrings of the prompt (not
# word-bounded). "doc" is a path under the docs root, optionally with
# "#anchor" naming one heading's slug (lowercase, hyphenated).
rules:
  - keywords: [database, schema, migration]
    doc: core/DATABASE.md
  - keywords: [deploy, release, rollout]
    doc: ops/DEPLOY.md
  - keywords: [auth, login, token]
    doc: core/AUTH.md#overview
`
	return os.WriteFile(path, []byte(content), 0644)
}
