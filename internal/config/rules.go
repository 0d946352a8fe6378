package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"dochook/internal/rules"
)

// rulesFile mirrors the on-disk rules.yaml layout.
type rulesFile struct {
	Rules []ruleEntry `yaml:"rules"`
}

type ruleEntry struct {
	Keywords []string `yaml:"keywords"`
	Doc      string   `yaml:"doc"`
}

// LoadRules reads the ordered rule table for a project. A missing rules
// file is not an error: it yields an empty table, which in turn makes the
// engine a silent no-op.
func LoadRules(projectPath string) ([]rules.Rule, error) {
	return LoadRulesFile(RulesPath(projectPath))
}

// LoadRulesFile reads an ordered rule table from an explicit path.
func LoadRulesFile(path string) ([]rules.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read rules: %w", err)
	}

	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}

	table := make([]rules.Rule, 0, len(file.Rules))
	for _, entry := range file.Rules {
		if entry.Doc == "" || len(entry.Keywords) == 0 {
			continue
		}
		table = append(table, rules.Rule{
			Keywords: entry.Keywords,
			Target:   rules.ParseRef(entry.Doc),
		})
	}

	return table, nil
}
