package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/ports"
)

// GameSummary is the outcome of a finished game.
type GameSummary struct {
	Record  domain.GameRecord
	Winners []domain.Player
	// Standings are every seat ordered by final total.
	Standings []domain.HighScore
}

// FinishGame appends the final totals to the leaderboard and, when an
// archive is configured, records the game.
type FinishGame struct {
	scores  ports.HighScoreStore
	archive ports.GameArchive
	logger  *slog.Logger
}

func NewFinishGame(scores ports.HighScoreStore, archive ports.GameArchive, logger *slog.Logger) *FinishGame {
	return &FinishGame{scores: scores, archive: archive, logger: orDiscard(logger)}
}

func (uc *FinishGame) Execute(ctx context.Context, s *domain.Session) (GameSummary, error) {
	if !s.IsGameOver() {
		return GameSummary{}, fmt.Errorf("game is still running: %w", domain.ErrTurnState)
	}

	entries := domain.HighScoresFromSession(s)
	winners := s.Winners()
	names := make([]string, 0, len(winners))
	for _, w := range winners {
		names = append(names, w.Name)
	}

	if err := uc.scores.Append(ctx, entries); err != nil {
		return GameSummary{}, err
	}

	rec := domain.GameRecord{Players: entries, Winners: names}
	if uc.archive != nil {
		stored, err := uc.archive.Record(ctx, rec)
		if err != nil {
			// The leaderboard already has the result.
			uc.logger.Warn("game.archive_failed", "err", err)
		} else {
			rec = stored
		}
	}

	standings := append([]domain.HighScore(nil), entries...)
	domain.SortHighScores(standings)

	uc.logger.Info("game.finished", "game_id", rec.ID, "winners", names)
	return GameSummary{Record: rec, Winners: winners, Standings: standings}, nil
}
