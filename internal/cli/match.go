package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dochook/internal/rules"
)

var matchCmd = &cobra.Command{
	Use:   "match <prompt>",
	Short: "Show which rules a prompt would trigger",
	Long: `Runs only the keyword matcher: prints the document references the prompt
matches, in rule declaration order, without touching the session store or
the budget.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

func runMatch(cmd *cobra.Command, args []string) error {
	prompt := strings.Join(args, " ")

	proj, err := loadProject()
	if err != nil {
		return err
	}
	defer proj.close()

	if len(proj.table) == 0 {
		fmt.Println("No rules configured (.dochook/rules.yaml missing or empty).")
		return nil
	}

	matched := rules.Match(prompt, proj.table)
	if len(matched) == 0 {
		fmt.Println("No rules matched.")
		return nil
	}

	fmt.Printf("Matched %d reference(s):\n", len(matched))
	for _, ref := range matched {
		status := ""
		if !proj.store.Exists(ref.Path) {
			status = "  (document missing)"
		}
		fmt.Printf("  %s%s\n", ref.String(), status)
	}
	return nil
}
