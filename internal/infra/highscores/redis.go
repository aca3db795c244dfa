package highscores

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/ports"
	"github.com/redis/go-redis/v9"
)

const memberSep = "\x1f"

// RedisStore keeps the leaderboard in a sorted set. Members are
// "<name>\x1f<uuid>" so one player can hold several entries.
type RedisStore struct {
	rdb *redis.Client
	key string
}

// NewRedisStore connects to the configured address.
func NewRedisStore(cfg domain.Config) (*RedisStore, error) {
	if strings.TrimSpace(cfg.HighScores.RedisAddr) == "" {
		return nil, &domain.OpError{Op: "highscores.redis", Kind: domain.KindInvalidConfig,
			Err: fmt.Errorf("redis address is empty: %w", domain.ErrInvalidConfig)}
	}
	return NewRedisStoreWithOptions(&redis.Options{Addr: cfg.HighScores.RedisAddr}, cfg.HighScores.RedisKey), nil
}

func NewRedisStoreWithOptions(opts *redis.Options, key string) *RedisStore {
	if strings.TrimSpace(key) == "" {
		key = domain.DefaultConfig().HighScores.RedisKey
	}
	return &RedisStore{rdb: redis.NewClient(opts), key: key}
}

var _ ports.HighScoreStore = (*RedisStore)(nil)

// Ping verifies Redis connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.rdb.Ping(ctx).Err(); err != nil {
		return &domain.OpError{Op: "highscores.redis.ping", Kind: domain.KindExecution, Err: err}
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

func (s *RedisStore) Append(ctx context.Context, entries []domain.HighScore) error {
	if len(entries) == 0 {
		return nil
	}

	members := make([]redis.Z, 0, len(entries))
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return &domain.OpError{Op: "highscores.redis.append", Kind: domain.KindInvalidConfig,
				Err: fmt.Errorf("empty player name: %w", domain.ErrInvalidPlayers)}
		}
		members = append(members, redis.Z{
			Score:  float64(e.Score),
			Member: name + memberSep + uuid.NewString(),
		})
	}

	if err := s.rdb.ZAdd(ctx, s.key, members...).Err(); err != nil {
		return &domain.OpError{Op: "highscores.redis.append", Kind: domain.KindExecution, Err: err}
	}
	return nil
}

func (s *RedisStore) Top(ctx context.Context, limit int) ([]domain.HighScore, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}

	zs, err := s.rdb.ZRevRangeWithScores(ctx, s.key, 0, stop).Result()
	if err != nil {
		return nil, &domain.OpError{Op: "highscores.redis.top", Kind: domain.KindExecution, Err: err}
	}

	out := make([]domain.HighScore, 0, len(zs))
	for _, z := range zs {
		member := fmt.Sprint(z.Member)
		name, _, _ := strings.Cut(member, memberSep)
		out = append(out, domain.HighScore{Name: name, Score: int(z.Score)})
	}
	return out, nil
}
