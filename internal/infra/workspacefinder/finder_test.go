package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nadza/Yahtzee/internal/domain"
)

func TestFindRoot_FindsWorkspaceFromNestedDir(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "ws")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte("yahtzee: {}\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	got, err := NewFinder().FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}

	got, ok := NewFinder().RootOrDir(nested)
	if !ok || got != root {
		t.Fatalf("RootOrDir = %s, %v", got, ok)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "a", "b")
	_ = os.MkdirAll(dir, 0o755)

	_, err := NewFinder().FindRoot(dir)
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}

	got, ok := NewFinder().RootOrDir(dir)
	if ok || got != dir {
		t.Fatalf("RootOrDir fallback = %s, %v", got, ok)
	}
}

func TestFindRoot_IgnoresDirectoryNamedLikeConfig(t *testing.T) {
	tmp := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmp, ConfigFileName), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if _, err := NewFinder().FindRoot(tmp); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}
