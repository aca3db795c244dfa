package ports

import (
	"context"

	"github.com/nadza/Yahtzee/internal/domain"
)

// GameArchive records finished games.
type GameArchive interface {
	Record(ctx context.Context, rec domain.GameRecord) (domain.GameRecord, error)
	Recent(ctx context.Context, limit int) ([]domain.GameRecord, error)
}
