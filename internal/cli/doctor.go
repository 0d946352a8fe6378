package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"dochook/internal/config"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check dochook installation health",
	Long:  `Runs diagnostic checks on the dochook setup and reports pass/fail for each component.`,
	RunE:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	passed := 0
	failed := 0

	check := func(name string, ok bool, detail string) {
		if ok {
			fmt.Printf("  ✓ %s\n", name)
			passed++
		} else {
			fmt.Printf("  ✗ %s — %s\n", name, detail)
			failed++
		}
	}

	globalDir := config.GlobalDir()
	fmt.Println("Global installation:")
	check("~/.dochook/ directory", exists(globalDir), "run: dochook init --global")
	check("~/.dochook/config.yaml", exists(config.GlobalConfigPath()), "run: dochook init --global")

	cwd, _ := os.Getwd()
	cfg, cfgErr := config.Load(cwd)

	fmt.Println()
	fmt.Println("Configuration:")
	if cfgErr != nil {
		check("config readable", false, cfgErr.Error())
	} else {
		check("config readable", true, "")
		fmt.Printf("  → docs root: %s\n", cfg.Docs.Root)
		fmt.Printf("  → budget: %d tokens (%d per line)\n", cfg.Budget.MaxTokens, cfg.Budget.TokensPerLine)
		check("session database directory", exists(filepath.Dir(cfg.SessionDBPath())),
			"will be created on first use")
	}

	fmt.Println()
	fmt.Println("Project (current directory):")
	projectDir := config.ProjectDir(cwd)
	check(".dochook/ directory", exists(projectDir), "run: dochook init")
	if exists(projectDir) {
		check(".dochook/rules.yaml", exists(config.RulesPath(cwd)), "run: dochook init")

		table, rulesErr := config.LoadRules(cwd)
		check("rules parseable", rulesErr == nil, fmt.Sprint(rulesErr))

		if rulesErr == nil && cfg != nil {
			missing := 0
			root := cfg.DocsRoot(cwd)
			for _, rule := range table {
				if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(rule.Target.Path))); err != nil {
					missing++
				}
			}
			check(fmt.Sprintf("rule targets resolve (%d rules)", len(table)), missing == 0,
				fmt.Sprintf("%d target document(s) missing under %s", missing, root))
		}
	}

	fmt.Println()
	fmt.Printf("Results: %d passed, %d failed\n", passed, failed)

	return nil
}
