package usecase

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/nadza/Yahtzee/internal/domain"
)

// Mode is how a new game seats its players.
type Mode int

const (
	// ModeClassic seats one human against the bot.
	ModeClassic Mode = iota
	// ModeFriends seats 2..10 named humans.
	ModeFriends
)

// DefaultHumanName is the human seat in classic mode.
const DefaultHumanName = "User"

type NewGame struct {
	cfg    domain.Config
	src    domain.Source
	logger *slog.Logger
}

type NewGameOption func(*NewGame)

// WithDiceSource overrides randomness for every session the usecase builds.
func WithDiceSource(src domain.Source) NewGameOption {
	return func(uc *NewGame) { uc.src = src }
}

func WithNewGameLogger(l *slog.Logger) NewGameOption {
	return func(uc *NewGame) { uc.logger = orDiscard(l) }
}

func NewNewGame(cfg domain.Config, opts ...NewGameOption) *NewGame {
	uc := &NewGame{cfg: cfg, logger: discardLogger()}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute builds a fresh session. names is ignored for classic mode.
func (uc *NewGame) Execute(mode Mode, names []string) (*domain.Session, error) {
	var specs []domain.PlayerSpec
	switch mode {
	case ModeClassic:
		specs = []domain.PlayerSpec{
			{Name: DefaultHumanName},
			{Name: uc.cfg.Bot.Name, Bot: true},
		}
	case ModeFriends:
		for _, n := range names {
			n = strings.TrimSpace(n)
			specs = append(specs, domain.PlayerSpec{Name: n, Bot: n == uc.cfg.Bot.Name})
		}
	default:
		return nil, fmt.Errorf("unknown mode %d: %w", mode, domain.ErrInvalidConfig)
	}

	s, err := domain.NewSession(specs, uc.sessionOptions()...)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("game.started", "mode", mode.String(), "players", len(specs))
	return s, nil
}

func (uc *NewGame) sessionOptions() []domain.SessionOption {
	opts := []domain.SessionOption{domain.WithRules(uc.cfg.GameRules())}
	if uc.src != nil {
		opts = append(opts, domain.WithSource(uc.src))
	}
	return opts
}

func (m Mode) String() string {
	switch m {
	case ModeClassic:
		return "classic"
	case ModeFriends:
		return "friends"
	default:
		return "unknown"
	}
}
