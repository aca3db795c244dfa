package usecase

import (
	"errors"
	"testing"

	"github.com/nadza/Yahtzee/internal/domain"
)

func TestSaveThenLoad_KeepsCommittedFields(t *testing.T) {
	cfg := domain.DefaultConfig()
	s, err := NewNewGame(cfg, WithDiceSource(dice(3, 3, 4, 5, 6))).Execute(ModeClassic, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if _, err := s.Roll(); err != nil {
		t.Fatalf("Roll: %v", err)
	}
	if _, err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if _, err := s.Score(domain.Chance); err != nil {
		t.Fatalf("Score: %v", err)
	}

	store := newMemSaveStore()
	slot, err := NewSaveGame(store, nil).Execute(s)
	if err != nil {
		t.Fatalf("SaveGame: %v", err)
	}
	if slot.Number != 1 {
		t.Fatalf("slot = %d", slot.Number)
	}

	loaded, err := NewLoadGame(store, cfg, nil).WithSource(dice(1)).Execute(slot.Number)
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	players := loaded.Players()
	if got := players[0].Card.Value(domain.Chance); got != 21 {
		t.Fatalf("chance = %d, want 21", got)
	}
	if players[0].Bot || !players[1].Bot {
		t.Fatalf("bot flags not restored: %v %v", players[0].Bot, players[1].Bot)
	}
	if loaded.Phase() != domain.PhaseAwaitingRoll || loaded.Round() != 1 {
		t.Fatalf("phase=%s round=%d", loaded.Phase(), loaded.Round())
	}
}

func TestLoadGame_MissingSlot(t *testing.T) {
	_, err := NewLoadGame(newMemSaveStore(), domain.DefaultConfig(), nil).Execute(2)
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLoadGame_RejectsBadCards(t *testing.T) {
	store := newMemSaveStore()
	bad := domain.NewScoreCard().Raw()
	bad[domain.Aces] = -4
	store.slots[1] = domain.SavedGame{Players: []domain.SavedPlayer{
		{Name: "Ana", Cards: bad},
		{Name: "Ben", Cards: domain.NewScoreCard().Raw()},
	}}

	_, err := NewLoadGame(store, domain.DefaultConfig(), nil).Execute(1)
	if !errors.Is(err, domain.ErrMalformedSave) {
		t.Fatalf("expected ErrMalformedSave, got %v", err)
	}
}

func TestSaveGame_PropagatesStoreError(t *testing.T) {
	s, err := NewNewGame(domain.DefaultConfig()).Execute(ModeClassic, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	store := newMemSaveStore()
	store.err = errors.New("disk full")

	if _, err := NewSaveGame(store, nil).Execute(s); err == nil {
		t.Fatalf("expected error")
	}
}
