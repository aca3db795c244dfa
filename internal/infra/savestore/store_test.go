package savestore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nadza/Yahtzee/internal/domain"
)

func sampleGame(t *testing.T, names ...string) domain.SavedGame {
	t.Helper()
	card := domain.NewScoreCard()
	if err := card.Commit(domain.Chance, 23); err != nil {
		t.Fatalf("commit: %v", err)
	}
	g := domain.SavedGame{}
	for _, n := range names {
		g.Players = append(g.Players, domain.SavedPlayer{Name: n, Cards: card.Raw()})
	}
	return g
}

func newStore(t *testing.T) (*SlotStore, string) {
	t.Helper()
	root := t.TempDir()
	return NewSlotStore(root, domain.DefaultConfig()), root
}

func TestSave_WritesTextFormat(t *testing.T) {
	s, root := newStore(t)

	slot, err := s.Save(sampleGame(t, "User", "Computer"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if slot.Number != 1 {
		t.Fatalf("slot = %d, want 1", slot.Number)
	}
	want := filepath.Join(root, "savedGames", "game_1.txt")
	if slot.Path != want {
		t.Fatalf("path = %s, want %s", slot.Path, want)
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	lines := strings.Split(string(b), "\n")
	if lines[0] != "User" || lines[2] != "Computer" {
		t.Fatalf("unexpected name lines: %q", lines)
	}
	if lines[1] != "-1 -1 -1 -1 -1 -1 -1 -1 -1 -1 -1 -1 -1 -1 -1 23 -1 -1 " {
		t.Fatalf("unexpected score line: %q", lines[1])
	}
	if _, err := os.Stat(want + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("tmp file left behind")
	}
}

func TestSave_FillsSlotsThenOverwritesFirst(t *testing.T) {
	s, _ := newStore(t)

	for i, want := range []int{1, 2, 3, 1} {
		slot, err := s.Save(sampleGame(t, "A", "B"))
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		if slot.Number != want {
			t.Fatalf("save %d went to slot %d, want %d", i, slot.Number, want)
		}
	}

	slots, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(slots))
	}
}

func TestWithMaxSlots(t *testing.T) {
	s := NewSlotStore(t.TempDir(), domain.DefaultConfig(), WithMaxSlots(1))
	if s.MaxSlots() != 1 {
		t.Fatalf("MaxSlots = %d, want 1", s.MaxSlots())
	}
	for i := 0; i < 2; i++ {
		slot, err := s.Save(sampleGame(t, "A", "B"))
		if err != nil {
			t.Fatalf("save: %v", err)
		}
		if slot.Number != 1 {
			t.Fatalf("slot = %d, want 1", slot.Number)
		}
	}
	if _, err := s.Load(2); !errors.Is(err, domain.ErrInvalidIndex) {
		t.Fatalf("expected ErrInvalidIndex, got %v", err)
	}
}

func TestSave_ReusesFreedSlot(t *testing.T) {
	s, _ := newStore(t)
	for i := 0; i < 3; i++ {
		if _, err := s.Save(sampleGame(t, "A", "B")); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	if err := os.Remove(filepath.Join(s.Dir(), "game_2.txt")); err != nil {
		t.Fatalf("remove: %v", err)
	}

	slot, err := s.Save(sampleGame(t, "C", "D"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if slot.Number != 2 {
		t.Fatalf("slot = %d, want 2", slot.Number)
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	s, _ := newStore(t)
	in := sampleGame(t, "Ana", "Ben", "Cy")
	if _, err := s.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load(1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Players) != 3 {
		t.Fatalf("players = %d", len(got.Players))
	}
	for i := range in.Players {
		if got.Players[i] != in.Players[i] {
			t.Fatalf("player %d = %+v, want %+v", i, got.Players[i], in.Players[i])
		}
	}
}

func TestLoad_Errors(t *testing.T) {
	s, _ := newStore(t)

	if _, err := s.Load(0); !errors.Is(err, domain.ErrInvalidIndex) {
		t.Fatalf("slot 0: expected ErrInvalidIndex, got %v", err)
	}
	if _, err := s.Load(2); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("empty slot: expected not found, got %v", err)
	}

	if err := os.MkdirAll(s.Dir(), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(s.Dir(), "game_3.txt"), []byte("Ana\n1 2 3\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := s.Load(3)
	if !errors.Is(err, domain.ErrMalformedSave) || !domain.IsKind(err, domain.KindMalformedSave) {
		t.Fatalf("expected malformed save, got %v", err)
	}

	slots, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(slots) != 1 || slots[0].Number != 3 || len(slots[0].Players) != 0 {
		t.Fatalf("unexpected slots: %+v", slots)
	}
}

func TestSave_RejectsMultilineName(t *testing.T) {
	s, _ := newStore(t)
	_, err := s.Save(sampleGame(t, "bad\nname", "ok"))
	if !errors.Is(err, domain.ErrInvalidPlayers) {
		t.Fatalf("expected ErrInvalidPlayers, got %v", err)
	}
}
