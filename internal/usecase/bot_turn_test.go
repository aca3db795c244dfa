package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nadza/Yahtzee/internal/domain"
)

func TestPlayBotTurn_UsesEveryRollAndScoresBest(t *testing.T) {
	s, err := domain.NewSession([]domain.PlayerSpec{
		{Name: "Computer", Bot: true},
		{Name: "Ana"},
	}, domain.WithSource(dice(6)))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	seen := 0
	res, err := NewPlayBotTurn().Execute(context.Background(), s, func(domain.RollOutcome) { seen++ })
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(res.Rolls) != domain.MaxRolls || seen != domain.MaxRolls {
		t.Fatalf("rolls=%d callbacks=%d, want %d", len(res.Rolls), seen, domain.MaxRolls)
	}
	if res.Category != domain.Yahtzee || res.Value != domain.YahtzeeScore {
		t.Fatalf("scored %s=%d, want yahtzee=%d", res.Category, res.Value, domain.YahtzeeScore)
	}
	if res.Advance.NextPlayer != "Ana" {
		t.Fatalf("next player = %q", res.Advance.NextPlayer)
	}
	if s.Current().Name != "Ana" || s.Phase() != domain.PhaseAwaitingRoll {
		t.Fatalf("turn did not pass: current=%s phase=%s", s.Current().Name, s.Phase())
	}
}

func TestPlayBotTurn_RepeatedYahtzeeTakesBonus(t *testing.T) {
	card := domain.NewScoreCard()
	_ = card.Commit(domain.Yahtzee, domain.YahtzeeScore)

	s, err := domain.RestoreSession([]domain.Player{
		{Name: "Computer", Bot: true, Card: card},
		{Name: "Ana"},
	}, domain.WithSource(dice(4)))
	if err != nil {
		t.Fatalf("RestoreSession: %v", err)
	}

	res, err := NewPlayBotTurn().Execute(context.Background(), s, nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !res.AutoYahtzeeBonus {
		t.Fatalf("expected automatic yahtzee bonus")
	}
	if got := s.Players()[0].Card.Value(domain.Yahtzee); got != 150 {
		t.Fatalf("yahtzee = %d, want 150", got)
	}
	if s.Current().Name != "Ana" {
		t.Fatalf("bonus should end the turn, current=%s", s.Current().Name)
	}
}

func TestPlayBotTurn_RejectsHumanSeat(t *testing.T) {
	s, err := domain.NewSession([]domain.PlayerSpec{{Name: "Ana"}, {Name: "Computer", Bot: true}})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	_, err = NewPlayBotTurn().Execute(context.Background(), s, nil)
	if !errors.Is(err, domain.ErrTurnState) {
		t.Fatalf("expected ErrTurnState, got %v", err)
	}
	if s.RollsUsed() != 0 {
		t.Fatalf("human seat was rolled for")
	}
}

func TestPlayBotTurn_CancelledWhileWaiting(t *testing.T) {
	s, err := domain.NewSession([]domain.PlayerSpec{{Name: "Computer", Bot: true}, {Name: "Ana"}})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := NewPlayBotTurn(WithRollDelay(time.Hour))
	if _, err := uc.Execute(ctx, s, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if s.RollsUsed() != 0 {
		t.Fatalf("cancelled bot still rolled")
	}
}
