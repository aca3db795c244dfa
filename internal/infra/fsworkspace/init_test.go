package fsworkspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nadza/Yahtzee/internal/domain"
)

func TestInitializer_Init_CreatesWorkspace(t *testing.T) {
	tmp := t.TempDir()

	report, err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp}, false)
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if len(report.Created) != 1 || report.Created[0] != "yahtzee.yaml" {
		t.Fatalf("unexpected report: %+v", report)
	}

	assertExists(t, filepath.Join(tmp, "yahtzee.yaml"))
	assertExists(t, filepath.Join(tmp, "savedGames"))
	assertExists(t, filepath.Join(tmp, "highscores"))
	assertExists(t, filepath.Join(tmp, ".yahtzee", "logs"))

	b, err := os.ReadFile(filepath.Join(tmp, "yahtzee.yaml"))
	if err != nil {
		t.Fatalf("read yahtzee.yaml: %v", err)
	}
	s := string(b)
	if strings.Contains(s, "{{") {
		t.Fatalf("unrendered placeholder left:\n%s", s)
	}
	for _, w := range []string{"saves_dir: savedGames", "name: Computer", "max_save_slots: 3"} {
		if !strings.Contains(s, w) {
			t.Fatalf("expected %q in yahtzee.yaml:\n%s", w, s)
		}
	}
}

func TestInitializer_Init_RendersCustomConfig(t *testing.T) {
	tmp := t.TempDir()
	cfg := domain.DefaultConfig()
	cfg.Paths.SavesDir = "slots"
	cfg.Bot.Name = "Robo"

	if _, err := NewInitializer().Init(domain.WorkspaceSpec{Root: tmp, Config: cfg}, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	assertExists(t, filepath.Join(tmp, "slots"))
	b, _ := os.ReadFile(filepath.Join(tmp, "yahtzee.yaml"))
	if !strings.Contains(string(b), "name: Robo") {
		t.Fatalf("expected custom bot name:\n%s", b)
	}
}

func TestInitializer_Init_SkipsExistingFilesUnlessForce(t *testing.T) {
	tmp := t.TempDir()

	cfgPath := filepath.Join(tmp, "yahtzee.yaml")
	if err := os.WriteFile(cfgPath, []byte("custom\n"), 0o644); err != nil {
		t.Fatalf("write existing yahtzee.yaml: %v", err)
	}

	i := NewInitializer()

	report, err := i.Init(domain.WorkspaceSpec{Root: tmp}, false)
	if err != nil {
		t.Fatalf("Init (force=false) error: %v", err)
	}
	if len(report.Skipped) != 1 {
		t.Fatalf("expected yahtzee.yaml skipped, got %+v", report)
	}

	b, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read yahtzee.yaml: %v", err)
	}
	if string(b) != "custom\n" {
		t.Fatalf("expected yahtzee.yaml preserved, got %q", string(b))
	}

	if _, err := i.Init(domain.WorkspaceSpec{Root: tmp}, true); err != nil {
		t.Fatalf("Init (force=true) error: %v", err)
	}

	b, err = os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("read yahtzee.yaml after force: %v", err)
	}
	if !strings.Contains(string(b), "yahtzee:") {
		t.Fatalf("expected yahtzee.yaml overwritten with template, got %q", string(b))
	}
}

func assertExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected %s, stat err=%v", path, err)
	}
}
