package config

// Config represents the full dochook configuration
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	// Documentation store settings
	Docs DocsConfig `yaml:"docs" mapstructure:"docs"`

	// Token budget settings
	Budget BudgetConfig `yaml:"budget" mapstructure:"budget"`

	// Session dedup store settings
	Session SessionConfig `yaml:"session" mapstructure:"session"`

	// Project-specific settings (only in project config)
	Project ProjectConfig `yaml:"project" mapstructure:"project"`
}

// DocsConfig configures the documentation store and line caps
type DocsConfig struct {
	// Root is the documentation directory, relative to the project root
	// unless absolute.
	Root string `yaml:"root" mapstructure:"root"`

	// MaxFileLines caps a whole-file load.
	MaxFileLines int `yaml:"max_file_lines" mapstructure:"max_file_lines"`

	// MaxSectionLines caps a section load and the not-found summary.
	MaxSectionLines int `yaml:"max_section_lines" mapstructure:"max_section_lines"`
}

// BudgetConfig configures the per-invocation token ceiling
type BudgetConfig struct {
	MaxTokens     int `yaml:"max_tokens" mapstructure:"max_tokens"`
	TokensPerLine int `yaml:"tokens_per_line" mapstructure:"tokens_per_line"`
}

// SessionConfig configures the dedup store backend
type SessionConfig struct {
	// Backend is "sqlite" or "memory".
	Backend string `yaml:"backend" mapstructure:"backend"`

	// DBPath overrides the default ~/.dochook/session.db location.
	DBPath string `yaml:"db_path" mapstructure:"db_path"`
}

// ProjectConfig holds project-specific settings
type ProjectConfig struct {
	Name string `yaml:"name" mapstructure:"name"`
}
