package highscores

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/nadza/Yahtzee/internal/domain"
)

func TestFileStore_AppendSortsDescending(t *testing.T) {
	root := t.TempDir()
	s := NewFileStore(root, domain.DefaultConfig())
	ctx := context.Background()

	if err := s.Append(ctx, []domain.HighScore{{Name: "Ana", Score: 120}, {Name: "Computer", Score: 210}}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.Append(ctx, []domain.HighScore{{Name: "Ana", Score: 180}}); err != nil {
		t.Fatalf("append: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(root, "highscores", "scores.txt"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(b) != "Computer\n210\nAna\n180\nAna\n120\n" {
		t.Fatalf("unexpected file:\n%s", b)
	}

	top, err := s.Top(ctx, 2)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 2 || top[0].Score != 210 || top[1].Score != 180 {
		t.Fatalf("top = %+v", top)
	}
}

func TestFileStore_TopOnMissingFile(t *testing.T) {
	s := NewFileStore(t.TempDir(), domain.DefaultConfig())
	top, err := s.Top(context.Background(), 0)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 0 {
		t.Fatalf("expected empty, got %+v", top)
	}
}

func TestFileStore_ReadsUnsortedFile(t *testing.T) {
	root := t.TempDir()
	s := NewFileStore(root, domain.DefaultConfig())
	if err := os.MkdirAll(filepath.Dir(s.Path()), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(s.Path(), []byte("Ben\n90 \nCy\n300\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	top, err := s.Top(context.Background(), 0)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if top[0].Name != "Cy" || top[1].Score != 90 {
		t.Fatalf("top = %+v", top)
	}
}

func TestFileStore_MalformedFile(t *testing.T) {
	root := t.TempDir()
	s := NewFileStore(root, domain.DefaultConfig())
	_ = os.MkdirAll(filepath.Dir(s.Path()), 0o755)
	_ = os.WriteFile(s.Path(), []byte("Ben\nlots\n"), 0o644)

	if _, err := s.Top(context.Background(), 0); !domain.IsKind(err, domain.KindMalformedSave) {
		t.Fatalf("expected malformed, got %v", err)
	}
}
