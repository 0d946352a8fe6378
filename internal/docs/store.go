package docs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store reads markdown documents under a documentation root.
// It never writes; a missing document is a normal, skippable condition.
type Store struct {
	root string
}

// NewStore creates a store rooted at the given directory.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Root returns the documentation root directory.
func (s *Store) Root() string {
	return s.root
}

// Load reads the document at the given relative path and returns its lines.
// os.IsNotExist distinguishes the missing-document case; paths that resolve
// outside the root are treated as missing.
func (s *Store) Load(relPath string) ([]string, error) {
	full, err := s.resolve(relPath)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(full)
	if err != nil {
		return nil, err
	}

	return splitLines(string(content)), nil
}

// Exists reports whether the document is present under the root.
func (s *Store) Exists(relPath string) bool {
	full, err := s.resolve(relPath)
	if err != nil {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && !info.IsDir()
}

// List walks the root and returns the relative paths of all markdown files.
func (s *Store) List() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(s.root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list docs: %w", err)
	}
	return paths, nil
}

// resolve cleans the relative path and rejects escapes from the root.
func (s *Store) resolve(relPath string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || filepath.IsAbs(cleaned) {
		return "", os.ErrNotExist
	}
	return filepath.Join(s.root, cleaned), nil
}

// splitLines splits content on newlines, dropping a trailing empty line so
// that "a\nb\n" counts as two lines, not three.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
