package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"dochook/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize dochook in current directory or globally",
	Long: `Initialize a dochook workspace.

Without flags: Creates .dochook/ in the current directory with a starter
rules table and project configuration.
With --global: Creates ~/.dochook/ with the global configuration and the
session database directory.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().Bool("global", false, "Initialize global dochook installation at ~/.dochook/")
	initCmd.Flags().Bool("force", false, "Overwrite existing files")
}

func runInit(cmd *cobra.Command, args []string) error {
	global, _ := cmd.Flags().GetBool("global")
	force, _ := cmd.Flags().GetBool("force")

	if global {
		return initGlobal(force)
	}
	return initProject(force)
}

func initGlobal(force bool) error {
	globalDir := config.GlobalDir()

	if exists(filepath.Join(globalDir, "config.yaml")) && !force {
		return fmt.Errorf("~/.dochook already initialized (use --force to overwrite)")
	}

	if err := os.MkdirAll(globalDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", globalDir, err)
	}

	if err := config.WriteDefault(config.GlobalConfigPath()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Initialized global dochook at %s\n", globalDir)
	return nil
}

func initProject(force bool) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	projectDir := config.ProjectDir(cwd)
	if exists(projectDir) && !force {
		return fmt.Errorf(".dochook already exists (use --force to overwrite)")
	}

	if err := os.MkdirAll(projectDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", projectDir, err)
	}

	if err := config.WriteProjectDefault(filepath.Join(projectDir, "config.yaml")); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	if err := config.WriteDefaultRules(config.RulesPath(cwd)); err != nil {
		return fmt.Errorf("failed to write rules: %w", err)
	}

	// Docs root from config; created empty so rules have somewhere to point
	cfg, _ := config.Load(cwd)
	if err := os.MkdirAll(cfg.DocsRoot(cwd), 0755); err != nil {
		return fmt.Errorf("failed to create docs root: %w", err)
	}

	fmt.Printf("Initialized dochook project in %s\n", projectDir)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Add markdown docs under " + cfg.Docs.Root + "/")
	fmt.Println("  2. Edit .dochook/rules.yaml to map keywords to docs")
	fmt.Println("  3. Register prompt-hook as a UserPromptSubmit hook")
	return nil
}
