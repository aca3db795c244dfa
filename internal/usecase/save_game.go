package usecase

import (
	"log/slog"

	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/ports"
)

type SaveGame struct {
	store  ports.SaveStore
	logger *slog.Logger
}

func NewSaveGame(store ports.SaveStore, logger *slog.Logger) *SaveGame {
	return &SaveGame{store: store, logger: orDiscard(logger)}
}

// Execute stores the scorecards of s. Only committed fields are persisted;
// a turn in progress is not.
func (uc *SaveGame) Execute(s *domain.Session) (domain.SaveSlot, error) {
	slot, err := uc.store.Save(domain.SnapshotSession(s))
	if err != nil {
		uc.logger.Error("game.save_failed", "err", err)
		return slot, err
	}
	uc.logger.Info("game.saved", "slot", slot.Number, "path", slot.Path, "round", s.Round())
	return slot, nil
}

type LoadGame struct {
	store  ports.SaveStore
	cfg    domain.Config
	src    domain.Source
	logger *slog.Logger
}

func NewLoadGame(store ports.SaveStore, cfg domain.Config, logger *slog.Logger) *LoadGame {
	return &LoadGame{store: store, cfg: cfg, logger: orDiscard(logger)}
}

// WithSource overrides dice randomness of restored sessions.
func (uc *LoadGame) WithSource(src domain.Source) *LoadGame {
	uc.src = src
	return uc
}

// Execute restores the game in slot. Seats named like the configured bot
// are played automatically.
func (uc *LoadGame) Execute(slot int) (*domain.Session, error) {
	g, err := uc.store.Load(slot)
	if err != nil {
		return nil, err
	}

	players, err := domain.PlayersFromSave(g, func(name string) bool { return name == uc.cfg.Bot.Name })
	if err != nil {
		return nil, err
	}

	opts := []domain.SessionOption{domain.WithRules(uc.cfg.GameRules())}
	if uc.src != nil {
		opts = append(opts, domain.WithSource(uc.src))
	}
	s, err := domain.RestoreSession(players, opts...)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("game.loaded", "slot", slot, "players", len(players), "round", s.Round())
	return s, nil
}
