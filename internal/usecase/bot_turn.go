package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nadza/Yahtzee/internal/domain"
)

// BotTurnResult describes a finished automated turn.
type BotTurnResult struct {
	Player           string
	Rolls            []domain.Hand
	Category         domain.Category
	Value            int
	AutoYahtzeeBonus bool
	Advance          domain.TurnAdvance
}

// PlayBotTurn drives a bot seat: it never holds, always uses every roll, then
// scores the best open category.
type PlayBotTurn struct {
	delay  time.Duration
	logger *slog.Logger
}

type BotOption func(*PlayBotTurn)

// WithRollDelay pauses between rolls so a watcher can follow along.
func WithRollDelay(d time.Duration) BotOption {
	return func(uc *PlayBotTurn) { uc.delay = d }
}

func WithBotLogger(l *slog.Logger) BotOption {
	return func(uc *PlayBotTurn) { uc.logger = orDiscard(l) }
}

func NewPlayBotTurn(opts ...BotOption) *PlayBotTurn {
	uc := &PlayBotTurn{logger: discardLogger()}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute plays the current seat, which must be a bot awaiting its first
// roll. onRoll, when set, sees every throw.
func (uc *PlayBotTurn) Execute(ctx context.Context, s *domain.Session, onRoll func(domain.RollOutcome)) (BotTurnResult, error) {
	p := s.Current()
	if !p.Bot {
		return BotTurnResult{}, fmt.Errorf("%s is not a bot: %w", p.Name, domain.ErrTurnState)
	}

	res := BotTurnResult{Player: p.Name}
	for {
		if err := uc.wait(ctx); err != nil {
			return res, err
		}

		out, err := s.Roll()
		if err != nil {
			return res, err
		}
		res.Rolls = append(res.Rolls, out.Faces)
		if onRoll != nil {
			onRoll(out)
		}

		if ev := out.Evaluation; ev != nil {
			if ev.AutoYahtzeeBonus {
				res.AutoYahtzeeBonus = true
				res.Category = domain.Yahtzee
				res.Advance = *ev.Advance
				uc.logger.Info("turn.yahtzee_bonus", "player", p.Name)
				return res, nil
			}
			break
		}
	}

	c, err := s.BestCategory()
	if err != nil {
		return res, err
	}
	commit, err := s.Score(c)
	if err != nil {
		return res, err
	}

	res.Category = commit.Category
	res.Value = commit.Value
	res.Advance = commit.Advance
	uc.logger.Info("turn.scored", "player", p.Name, "category", c.Slug(), "value", commit.Value, "bot", true)
	return res, nil
}

func (uc *PlayBotTurn) wait(ctx context.Context) error {
	if uc.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(uc.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
