package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var enrichCmd = &cobra.Command{
	Use:   "enrich [prompt...]",
	Short: "Run the enrichment engine against a prompt",
	Long: `Runs the full match -> dedup -> extract -> budget pipeline and prints the
envelope, exactly as the prompt-hook binary would. The prompt comes from the
arguments, or from stdin when no arguments are given.

With no matching rules (or when everything was already injected in the
session) the command prints nothing and succeeds.`,
	RunE: runEnrich,
}

func init() {
	enrichCmd.Flags().String("session", "", "Session identifier (default: a fresh UUID)")
}

func runEnrich(cmd *cobra.Command, args []string) error {
	prompt := strings.Join(args, " ")
	if prompt == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read prompt from stdin: %w", err)
		}
		prompt = string(data)
	}

	sessionID, _ := cmd.Flags().GetString("session")
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	proj, err := loadProject()
	if err != nil {
		return err
	}
	defer proj.close()

	if verbose {
		fmt.Fprintf(os.Stderr, "session: %s\nrules: %d\ndocs root: %s\n",
			sessionID, len(proj.table), proj.store.Root())
	}

	out, err := proj.newEngine().Enrich(sessionID, prompt)
	if err != nil {
		return err
	}
	if out != "" {
		fmt.Print(out)
	}
	return nil
}
