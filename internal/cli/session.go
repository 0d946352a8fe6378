package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Session dedup store utilities",
}

var sessionShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "List references already injected in a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionShow,
}

var sessionClearCmd = &cobra.Command{
	Use:   "clear <session-id>",
	Short: "Reset a session's dedup record",
	Long: `Drops the record of injected references for the session so documents can
be injected again. The engine never clears records itself; this is session
housekeeping, typically run at session end.`,
	Args: cobra.ExactArgs(1),
	RunE: runSessionClear,
}

func init() {
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionClearCmd)
}

func runSessionShow(cmd *cobra.Command, args []string) error {
	proj, err := loadProject()
	if err != nil {
		return err
	}
	defer proj.close()

	refs, err := proj.sessions.Loaded(args[0])
	if err != nil {
		return err
	}

	if len(refs) == 0 {
		fmt.Println("No documents injected in this session.")
		return nil
	}

	fmt.Printf("%d reference(s) injected:\n", len(refs))
	for _, ref := range refs {
		fmt.Printf("  %s\n", ref)
	}
	return nil
}

func runSessionClear(cmd *cobra.Command, args []string) error {
	proj, err := loadProject()
	if err != nil {
		return err
	}
	defer proj.close()

	if err := proj.sessions.Clear(args[0]); err != nil {
		return err
	}

	fmt.Printf("Cleared session %s\n", args[0])
	return nil
}
