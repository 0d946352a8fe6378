// prompt-hook is the UserPromptSubmit hook binary.
// It reads the assistant's hook payload from stdin, runs the enrichment
// engine, and prints the documentation envelope to stdout — or nothing at
// all when there is nothing to inject. It must never break the assistant:
// every failure path is a silent exit.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"dochook/internal/config"
	"dochook/internal/docs"
	"dochook/internal/engine"
	"dochook/internal/session"
	"dochook/pkg/types"
)

func main() {
	// Read hook input from stdin
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		// Silent failure - don't break the assistant
		os.Exit(0)
	}

	var hookInput types.HookInput
	if err := json.Unmarshal(input, &hookInput); err != nil {
		// Unparseable payload: the one condition surfaced as non-zero,
		// still with no output.
		os.Exit(1)
	}

	if hookInput.Prompt == "" {
		os.Exit(0)
	}

	// Determine project path
	projectPath := hookInput.Cwd
	if projectPath == "" {
		projectPath, _ = os.Getwd()
	}

	// Skip if the project doesn't use dochook
	if _, err := os.Stat(config.ProjectDir(projectPath)); os.IsNotExist(err) {
		os.Exit(0)
	}

	// Determine session ID
	sessionID := hookInput.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	out, err := run(projectPath, sessionID, hookInput.Prompt)
	if err != nil {
		// Log but don't fail the hook
		fmt.Fprintf(os.Stderr, "prompt-hook: %v\n", err)
		os.Exit(0)
	}

	if out != "" {
		fmt.Print(out)
	}
}

func run(projectPath, sessionID, prompt string) (string, error) {
	cfg, err := config.Load(projectPath)
	if err != nil {
		return "", err
	}

	table, err := config.LoadRules(projectPath)
	if err != nil {
		return "", err
	}
	if len(table) == 0 {
		return "", nil
	}

	store, err := session.NewSQLiteStore(cfg.SessionDBPath())
	if err != nil {
		return "", err
	}
	defer store.Close()

	eng := engine.New(docs.NewStore(cfg.DocsRoot(projectPath)), store, table, cfg)
	return eng.Enrich(sessionID, prompt)
}
