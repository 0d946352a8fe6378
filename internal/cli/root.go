// Package cli implements the dochook command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	rootCmd *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "dochook",
		Short: "dochook - documentation context injection for AI coding assistants",
		Long: `dochook matches prompt keywords against a rule table and injects bounded
markdown fragments into an AI coding assistant's conversation.

The prompt-hook binary runs the engine on every prompt submission; this CLI
scaffolds projects, debugs rule tables and inspects session state.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// Execute runs the root command
func Execute(version string) error {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(enrichCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(sessionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(doctorCmd)

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
