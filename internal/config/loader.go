package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads and merges configuration from global and project sources
func Load(projectPath string) (*Config, error) {
	cfg := DefaultConfig()

	// Load global config first
	if home, err := os.UserHomeDir(); err == nil {
		globalPath := filepath.Join(home, ".dochook", "config.yaml")
		if err := loadFile(globalPath, cfg); err != nil && !os.IsNotExist(err) {
			// Continue with defaults
		}
	}

	// Load project config (overrides global)
	if projectPath != "" {
		path := filepath.Join(projectPath, ".dochook", "config.yaml")
		if err := loadFile(path, cfg); err != nil && !os.IsNotExist(err) {
			// Continue
		}
	}

	// Auto-detect project name if not set
	if cfg.Project.Name == "" && projectPath != "" {
		cfg.Project.Name = filepath.Base(projectPath)
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

// DocsRoot resolves the documentation root for a project.
func (c *Config) DocsRoot(projectPath string) string {
	if filepath.IsAbs(c.Docs.Root) {
		return c.Docs.Root
	}
	return filepath.Join(projectPath, c.Docs.Root)
}

// GlobalDir returns the path to the global dochook directory
func GlobalDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".dochook")
}

// GlobalConfigPath returns the path to the global config file
func GlobalConfigPath() string {
	return filepath.Join(GlobalDir(), "config.yaml")
}

// SessionDBPath returns the dedup database location for the configuration.
func (c *Config) SessionDBPath() string {
	if c.Session.DBPath != "" {
		return c.Session.DBPath
	}
	return filepath.Join(GlobalDir(), "session.db")
}

// ProjectDir returns the path to the project dochook directory
func ProjectDir(projectPath string) string {
	return filepath.Join(projectPath, ".dochook")
}

// RulesPath returns the path to the project rules table
func RulesPath(projectPath string) string {
	return filepath.Join(ProjectDir(projectPath), "rules.yaml")
}
