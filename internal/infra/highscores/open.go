package highscores

import (
	"context"
	"fmt"

	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/ports"
)

// Open returns the configured leaderboard backend. The close func is never
// nil.
func Open(ctx context.Context, root string, cfg domain.Config) (ports.HighScoreStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.HighScores.Backend {
	case "", domain.HighScoresFile:
		return NewFileStore(root, cfg), noop, nil
	case domain.HighScoresRedis:
		s, err := NewRedisStore(cfg)
		if err != nil {
			return nil, noop, err
		}
		if err := s.Ping(ctx); err != nil {
			_ = s.Close()
			return nil, noop, err
		}
		return s, s.Close, nil
	default:
		return nil, noop, &domain.OpError{Op: "highscores.open", Kind: domain.KindInvalidConfig,
			Err: fmt.Errorf("unknown backend %q: %w", cfg.HighScores.Backend, domain.ErrInvalidConfig)}
	}
}
