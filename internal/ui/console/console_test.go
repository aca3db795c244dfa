package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/infra/highscores"
	"github.com/nadza/Yahtzee/internal/infra/savestore"
	"github.com/nadza/Yahtzee/internal/printer"
)

type constDice int

func (d constDice) IntN(n int) int { return (int(d) - 1) % n }

type harness struct {
	out    *bytes.Buffer
	saves  *savestore.SlotStore
	scores *highscores.FileStore
	c      *Console
}

func newHarness(t *testing.T, input string, face int) *harness {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	root := t.TempDir()
	cfg := domain.DefaultConfig()
	out := &bytes.Buffer{}
	h := &harness{
		out:    out,
		saves:  savestore.NewSlotStore(root, cfg),
		scores: highscores.NewFileStore(root, cfg),
	}
	h.c = New(Deps{
		Config:  cfg,
		Saves:   h.saves,
		Scores:  h.scores,
		Source:  constDice(face),
		In:      strings.NewReader(input),
		Printer: printer.New(out, out),
	})
	return h
}

func lines(in ...string) string { return strings.Join(in, "\n") + "\n" }

// cardWithOnlyChanceOpen fills every scorable field but Chance.
func cardWithOnlyChanceOpen(t *testing.T, aces int) *domain.ScoreCard {
	t.Helper()
	card := domain.NewScoreCard()
	for _, c := range domain.ScorableCategories() {
		if c == domain.Chance {
			continue
		}
		v := 0
		if c == domain.Aces {
			v = aces
		}
		if err := card.Commit(c, v); err != nil {
			t.Fatalf("commit %s: %v", c, err)
		}
	}
	return card
}

func TestRun_MenusAndExit(t *testing.T) {
	h := newHarness(t, lines("9", "2", "", "3", "", "4"), 1)
	if err := h.c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := h.out.String()
	for _, want := range []string{"Invalid choice", "ABOUT YAHTZEE", "HIGH SCORES", "Goodbye!"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestRun_EndOfInputIsNotAnError(t *testing.T) {
	h := newHarness(t, lines("1"), 1)
	if err := h.c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRun_LoadWithoutSaves(t *testing.T) {
	h := newHarness(t, lines("1", "3", "", "4"), 1)
	if err := h.c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(h.out.String(), "There are no saved games available.") {
		t.Fatalf("missing empty-slots message:\n%s", h.out.String())
	}
}

func TestPlay_FinalTurnsPickWinnerAndRecordScores(t *testing.T) {
	input := lines(
		// Ana: hold two dice, then release one, keep the roll, then try
		// a computed field and a filled field before Chance.
		"s 1 3", "u 3", "n", "maybe", "n", "6", "0", "chance",
		// exit prompt
		"n",
		// Ben
		"n", "n", "15",
		// press enter after the result
		"",
	)
	h := newHarness(t, input, 6)

	s, err := domain.RestoreSession([]domain.Player{
		{Name: "Ana", Card: cardWithOnlyChanceOpen(t, 3)},
		{Name: "Ben", Card: cardWithOnlyChanceOpen(t, 0)},
	}, domain.WithSource(constDice(6)))
	if err != nil {
		t.Fatalf("RestoreSession: %v", err)
	}

	if err := h.c.Play(context.Background(), s); err != nil {
		t.Fatalf("Play: %v", err)
	}

	got := h.out.String()
	for _, want := range []string{
		" [1]      2      [3]",
		"Invalid input. Please enter 'y' or 'n'.",
		"Total Without Bonus is computed and cannot be chosen.",
		"Aces is already filled.",
		"Ana scored 30 in Chance.",
		"The winner of the game is: Ana.",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}

	top, err := h.scores.Top(context.Background(), 0)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(top) != 2 || top[0].Name != "Ana" || top[0].Score != 33 || top[1].Score != 30 {
		t.Fatalf("high scores = %+v", top)
	}
}

func TestRun_ClassicGameSaveAndQuit(t *testing.T) {
	input := lines(
		"1", "1", // start, classic
		"n", "n", "chance", // User round 1
		"n",                // keep playing; Computer plays, round ends
		"y",                // save
		"n", "n", "aces", // User round 2
		"y", // exit to menu
		"4",
	)
	h := newHarness(t, input, 6)

	if err := h.c.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := h.out.String()
	if !strings.Contains(got, "Computer scored 50 in Yahtzee.") {
		t.Fatalf("bot turn missing:\n%s", got)
	}
	if !strings.Contains(got, "Game saved to slot 1.") {
		t.Fatalf("save missing:\n%s", got)
	}

	g, err := h.saves.Load(1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if g.Players[0].Name != "User" || g.Players[0].Cards[domain.Chance] != 30 {
		t.Fatalf("saved user = %+v", g.Players[0])
	}
	if g.Players[0].Cards[domain.Aces] != domain.RawUnset {
		t.Fatalf("round 2 should not be in the save: %v", g.Players[0].Cards)
	}
	if g.Players[1].Cards[domain.Yahtzee] != 50 {
		t.Fatalf("saved computer = %+v", g.Players[1])
	}
}

func TestRenderDice(t *testing.T) {
	got := renderDice(domain.Hand{1, 2, 3, 4, 6}, [domain.DiceCount]bool{false, true})
	want := strings.Join([]string{
		" _____   _____   _____   _____   _____",
		"|     | |     | |o    | |o   o| |o   o|",
		"|  o  | |o   o| |  o  | |     | |o   o|",
		"|     | |     | |    o| |o   o| |o   o|",
		" ‾‾‾‾‾   ‾‾‾‾‾   ‾‾‾‾‾   ‾‾‾‾‾   ‾‾‾‾‾",
		"  1      [2]      3       4       5",
	}, "\n") + "\n"
	if got != want {
		t.Fatalf("renderDice mismatch:\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestParseDice(t *testing.T) {
	idx, err := parseDice([]string{"1", "5"})
	if err != nil || len(idx) != 2 || idx[0] != 0 || idx[1] != 4 {
		t.Fatalf("parseDice = %v, %v", idx, err)
	}
	if _, err := parseDice([]string{"6"}); err == nil {
		t.Fatalf("expected error for die 6")
	}
	if _, err := parseDice([]string{"x"}); err == nil {
		t.Fatalf("expected error for non-number")
	}
}
