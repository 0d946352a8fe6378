package docs

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func writeDoc(t *testing.T, root, relPath, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", relPath, err)
	}
}

func TestStoreLoad(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeDoc(t, root, "core/DATABASE.md", "# Database\nline two\n")

	store := NewStore(root)
	lines, err := store.Load("core/DATABASE.md")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []string{"# Database", "line two"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("lines = %q, want %q", lines, want)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	_, err := store.Load("nope.md")
	if !os.IsNotExist(err) {
		t.Errorf("expected IsNotExist, got %v", err)
	}
}

func TestStoreRejectsEscape(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	outside := filepath.Join(filepath.Dir(root), "secret.md")
	os.WriteFile(outside, []byte("secret"), 0644)

	store := NewStore(root)
	for _, p := range []string{"../secret.md", "/etc/passwd", "a/../../secret.md"} {
		if _, err := store.Load(p); !os.IsNotExist(err) {
			t.Errorf("Load(%q): expected IsNotExist, got %v", p, err)
		}
	}
}

func TestStoreExists(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeDoc(t, root, "a.md", "x\n")

	store := NewStore(root)
	if !store.Exists("a.md") {
		t.Error("a.md should exist")
	}
	if store.Exists("b.md") {
		t.Error("b.md should not exist")
	}
	if store.Exists(".") {
		t.Error("directories are not documents")
	}
}

func TestStoreList(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeDoc(t, root, "core/DATABASE.md", "x\n")
	writeDoc(t, root, "ops/DEPLOY.md", "x\n")
	writeDoc(t, root, "notes.txt", "not markdown\n")

	store := NewStore(root)
	got, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	sort.Strings(got)

	want := []string{"core/DATABASE.md", "ops/DEPLOY.md"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("List = %q, want %q", got, want)
	}
}
