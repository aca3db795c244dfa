package tui

import (
	"io"
	"log/slog"

	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/ports"
)

type Deps struct {
	WorkspaceLocator     ports.WorkspaceLocator
	WorkspaceInitializer ports.WorkspaceInitializer

	Config  domain.Config
	Saves   ports.SaveStore
	Scores  ports.HighScoreStore
	Archive ports.GameArchive // optional
	Source  domain.Source     // optional

	// Start, when set, opens the TUI directly on this game.
	Start *domain.Session

	Logger *slog.Logger
	Debug  bool
}

func (d Deps) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return d.Logger
}
