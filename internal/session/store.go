package session

import "sync"

// Store records which references have been injected per session.
// Implementations tolerate racing invocations by accepting at-least-once
// injection rather than guaranteeing exactly-once.
type Store interface {
	// IsLoaded reports whether the reference (canonical string form) has
	// already been injected in the session.
	IsLoaded(sessionID, ref string) (bool, error)

	// MarkLoaded records the reference as injected. Marking an already
	// marked reference is a no-op.
	MarkLoaded(sessionID, ref string) error

	// Loaded returns every reference recorded for the session, in the
	// order they were first marked.
	Loaded(sessionID string) ([]string, error)

	// Clear drops the session's record. Housekeeping only; the engine
	// never calls this.
	Clear(sessionID string) error

	// Close releases any backing resources.
	Close() error
}

// MemoryStore is an in-process Store for tests and single-process runs.
type MemoryStore struct {
	mu     sync.Mutex
	loaded map[string][]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{loaded: make(map[string][]string)}
}

// IsLoaded implements Store.
func (m *MemoryStore) IsLoaded(sessionID, ref string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.loaded[sessionID] {
		if r == ref {
			return true, nil
		}
	}
	return false, nil
}

// MarkLoaded implements Store.
func (m *MemoryStore) MarkLoaded(sessionID, ref string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.loaded[sessionID] {
		if r == ref {
			return nil
		}
	}
	m.loaded[sessionID] = append(m.loaded[sessionID], ref)
	return nil
}

// Loaded implements Store.
func (m *MemoryStore) Loaded(sessionID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	refs := make([]string, len(m.loaded[sessionID]))
	copy(refs, m.loaded[sessionID])
	return refs, nil
}

// Clear implements Store.
func (m *MemoryStore) Clear(sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.loaded, sessionID)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	return nil
}
