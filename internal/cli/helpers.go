package cli

import (
	"fmt"
	"os"

	"dochook/internal/config"
	"dochook/internal/docs"
	"dochook/internal/engine"
	"dochook/internal/rules"
	"dochook/internal/session"
)

// projectContext bundles everything a command needs to run the engine
// against the current project.
type projectContext struct {
	path     string
	cfg      *config.Config
	store    *docs.Store
	table    []rules.Rule
	sessions session.Store
}

func (p *projectContext) close() {
	if p.sessions != nil {
		p.sessions.Close()
	}
}

func (p *projectContext) newEngine() *engine.Engine {
	return engine.New(p.store, p.sessions, p.table, p.cfg)
}

// loadProject resolves the working directory into a project context.
func loadProject() (*projectContext, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return loadProjectAt(cwd)
}

func loadProjectAt(projectPath string) (*projectContext, error) {
	cfg, err := config.Load(projectPath)
	if err != nil {
		return nil, err
	}

	table, err := config.LoadRules(projectPath)
	if err != nil {
		return nil, err
	}

	sessions, err := openSessionStore(cfg)
	if err != nil {
		return nil, err
	}

	return &projectContext{
		path:     projectPath,
		cfg:      cfg,
		store:    docs.NewStore(cfg.DocsRoot(projectPath)),
		table:    table,
		sessions: sessions,
	}, nil
}

func openSessionStore(cfg *config.Config) (session.Store, error) {
	if cfg.Session.Backend == "memory" {
		return session.NewMemoryStore(), nil
	}
	return session.NewSQLiteStore(cfg.SessionDBPath())
}
