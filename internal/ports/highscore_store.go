package ports

import (
	"context"

	"github.com/nadza/Yahtzee/internal/domain"
)

// HighScoreStore keeps the leaderboard.
type HighScoreStore interface {
	Append(ctx context.Context, entries []domain.HighScore) error
	// Top returns entries sorted by score descending. limit <= 0 means all.
	Top(ctx context.Context, limit int) ([]domain.HighScore, error)
}
