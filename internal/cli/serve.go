package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"dochook/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the rule/document preview server",
	Long: `Serves a read-only HTTP API over the project's rule table, documentation
store and session record, for debugging rules without submitting prompts.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "localhost:8700", "Listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")

	proj, err := loadProject()
	if err != nil {
		return err
	}
	defer proj.close()

	fmt.Printf("dochook preview server on http://%s\n", addr)
	fmt.Printf("  docs root: %s\n  rules: %d\n", proj.store.Root(), len(proj.table))

	server := web.NewServer(proj.store, proj.sessions, proj.table)
	return server.Run(addr)
}
