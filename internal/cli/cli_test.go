package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/infra/savestore"
	"github.com/nadza/Yahtzee/internal/usecase"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// savedWorkspace writes a fresh two-player game to slot 1 of a temp dir.
func savedWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	cfg := domain.DefaultConfig()

	s, err := usecase.NewNewGame(cfg).Execute(usecase.ModeFriends, []string{"Ana", "Ben"})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	if _, err := savestore.NewSlotStore(root, cfg).Save(domain.SnapshotSession(s)); err != nil {
		t.Fatalf("save: %v", err)
	}
	return root
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"play", "init", "scores", "saves", "history", "version"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
	for _, flag := range []string{"debug", "workspace"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("expected persistent --%s flag", flag)
		}
	}
}

func TestPlayCmd_Flags(t *testing.T) {
	cmd := playCmd(&rootOptions{})
	for _, flag := range []string{"console", "classic", "players", "load"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on play command", flag)
		}
	}
}

func TestSavesCmd_HasSubcommands(t *testing.T) {
	cmd := savesCmd(&rootOptions{})
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"list", "show", "export"} {
		if !names[expected] {
			t.Errorf("expected %q under saves", expected)
		}
	}
}

func TestInitCmd_Flags(t *testing.T) {
	cmd := initCmd()
	if cmd.Flags().Lookup("path") == nil {
		t.Error("expected --path flag on init command")
	}
	if cmd.Flags().Lookup("force") == nil {
		t.Error("expected --force flag on init command")
	}
}

// --- resolveWorkspaceRoot ---

func TestResolveWorkspaceRoot_ExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	got, found, err := resolveWorkspaceRoot(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != tmp {
		t.Errorf("expected %q, got %q", tmp, got)
	}
	if found {
		t.Error("expected found=false without yahtzee.yaml")
	}
}

func TestResolveWorkspaceRoot_ExplicitWorkspace(t *testing.T) {
	tmp := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmp, "yahtzee.yaml"), []byte("rules:\n  legacy_bonus: false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, found, err := resolveWorkspaceRoot(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found {
		t.Error("expected found=true")
	}
}

func TestResolveWorkspaceRoot_MissingDir(t *testing.T) {
	_, _, err := resolveWorkspaceRoot(filepath.Join(t.TempDir(), "nope"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestResolveWorkspaceRoot_FallsBackToWorkingDir(t *testing.T) {
	tmp := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	got, found, err := resolveWorkspaceRoot("  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := filepath.EvalSymlinks(tmp)
	gotReal, _ := filepath.EvalSymlinks(got)
	if gotReal != want {
		t.Errorf("expected %q, got %q", want, gotReal)
	}
	if found {
		t.Error("expected found=false")
	}
}

func TestParseSlot(t *testing.T) {
	if n, err := parseSlot(" 2 "); err != nil || n != 2 {
		t.Fatalf("parseSlot = %d, %v", n, err)
	}
	for _, in := range []string{"0", "-1", "two"} {
		if _, err := parseSlot(in); !errors.Is(err, domain.ErrInvalidIndex) {
			t.Errorf("parseSlot(%q): expected ErrInvalidIndex, got %v", in, err)
		}
	}
}

// --- commands against a temp workspace ---

func TestInit_CreatesConfig(t *testing.T) {
	root := t.TempDir()
	out, _, err := execute(t, "", "init", "--path", root)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, "Workspace ready") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(root, "yahtzee.yaml")); err != nil {
		t.Fatalf("yahtzee.yaml not written: %v", err)
	}

	out, _, err = execute(t, "", "init", "--path", root)
	if err != nil {
		t.Fatalf("second init: %v", err)
	}
	if !strings.Contains(out, "skipped yahtzee.yaml") {
		t.Errorf("expected skipped file on second init:\n%s", out)
	}
}

func TestScores_Empty(t *testing.T) {
	out, _, err := execute(t, "", "scores", "-w", t.TempDir())
	if err != nil {
		t.Fatalf("scores: %v", err)
	}
	if !strings.Contains(out, "no high scores yet") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestSaves_ListShowExport(t *testing.T) {
	root := savedWorkspace(t)

	out, _, err := execute(t, "", "saves", "list", "-w", root)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "Game 1  Ana, Ben") {
		t.Errorf("unexpected list output:\n%s", out)
	}

	out, _, err = execute(t, "", "saves", "show", "1", "-w", root)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "Ana's SCORE CARD") || !strings.Contains(out, "Ben's SCORE CARD") {
		t.Errorf("unexpected show output:\n%s", out)
	}

	out, _, err = execute(t, "", "saves", "export", "1", "--query", "$.players[*].name", "-w", root)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, `"Ana"`) || !strings.Contains(out, `"Ben"`) {
		t.Errorf("unexpected export output:\n%s", out)
	}
}

func TestSaves_ShowMissingSlot(t *testing.T) {
	_, errOut, err := execute(t, "", "saves", "show", "3", "-w", t.TempDir())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(errOut, "saved game not found") {
		t.Errorf("expected explanation on stderr, got:\n%s", errOut)
	}
}

func TestHistory_Empty(t *testing.T) {
	out, _, err := execute(t, "", "history", "-w", t.TempDir())
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "no finished games") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "yahtzee ") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestPlayConsole_MenuEndsWithInput(t *testing.T) {
	out, _, err := execute(t, "", "play", "--console", "-w", t.TempDir())
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if !strings.Contains(out, "YAHTZEE GAME") {
		t.Errorf("expected main menu, got:\n%s", out)
	}
}

func TestPlayConsole_RejectsSinglePlayer(t *testing.T) {
	_, errOut, err := execute(t, "", "play", "--console", "--players", "ana", "-w", t.TempDir())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(errOut, "invalid players") {
		t.Errorf("expected explanation on stderr, got:\n%s", errOut)
	}
}

func TestPlay_ExclusiveFlags(t *testing.T) {
	_, _, err := execute(t, "", "play", "--console", "--classic", "--load", "1", "-w", t.TempDir())
	if err == nil {
		t.Fatal("expected error for --classic with --load")
	}
}
