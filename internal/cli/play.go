package cli

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/infra/fsworkspace"
	"github.com/nadza/Yahtzee/internal/infra/logger"
	"github.com/nadza/Yahtzee/internal/infra/workspacefinder"
	"github.com/nadza/Yahtzee/internal/printer"
	"github.com/nadza/Yahtzee/internal/ui/console"
	"github.com/nadza/Yahtzee/internal/ui/tui"
	"github.com/nadza/Yahtzee/internal/usecase"
)

type playFlags struct {
	console bool
	classic bool
	players []string
	load    int
}

// wantsGame reports whether the flags pick a game, skipping the menu.
func (f playFlags) wantsGame() bool {
	return f.classic || len(f.players) > 0 || f.load > 0
}

func playCmd(opts *rootOptions) *cobra.Command {
	var f playFlags

	c := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the TUI or the line console",
		Example: `  yahtzee play --classic
  yahtzee play --players ana,ben,computer
  yahtzee play --console --load 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.console {
				return playConsole(cmd, opts, f)
			}
			return playTUI(cmd, opts, f)
		},
	}

	c.Flags().BoolVar(&f.console, "console", false, "Use the plain line console instead of the TUI")
	c.Flags().BoolVar(&f.classic, "classic", false, "Start a classic game against the computer")
	c.Flags().StringSliceVar(&f.players, "players", nil, "Start a game with these players (comma separated)")
	c.Flags().IntVar(&f.load, "load", 0, "Resume the game saved in this slot")
	c.MarkFlagsMutuallyExclusive("classic", "players", "load")
	return c
}

// startSession builds the session the flags ask for, or nil for the menu.
func startSession(ws *workspaceCtx, f playFlags, log *slog.Logger) (*domain.Session, error) {
	switch {
	case f.load > 0:
		return usecase.NewLoadGame(ws.saves, ws.cfg, log).Execute(f.load)
	case len(f.players) > 0:
		return usecase.NewNewGame(ws.cfg, usecase.WithNewGameLogger(log)).Execute(usecase.ModeFriends, f.players)
	case f.classic:
		return usecase.NewNewGame(ws.cfg, usecase.WithNewGameLogger(log)).Execute(usecase.ModeClassic, nil)
	}
	return nil, nil
}

func playTUI(cmd *cobra.Command, opts *rootOptions, f playFlags) error {
	p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())

	ws, err := loadWorkspace(cmd.Context(), opts.workspace)
	if err != nil {
		return explain(p, err)
	}
	defer ws.close()
	defer ws.setupLogging(opts.debug)()
	if opts.debug {
		p.Step("debug log: %s\n", logger.Path())
	}

	log := logger.ForGame(uuid.NewString())
	start, err := startSession(ws, f, log)
	if err != nil {
		return explain(p, err)
	}

	deps := tui.Deps{
		WorkspaceLocator:     workspacefinder.NewFinder(),
		WorkspaceInitializer: fsworkspace.NewInitializer(),
		Config:               ws.cfg,
		Saves:                ws.saves,
		Scores:               ws.scores,
		Archive:              ws.gameArchive(cmd.Context(), log),
		Start:                start,
		Logger:               log,
		Debug:                opts.debug,
	}
	return tui.Run(deps)
}

func playConsole(cmd *cobra.Command, opts *rootOptions, f playFlags) error {
	p := printer.New(cmd.OutOrStdout(), cmd.ErrOrStderr())

	ws, err := loadWorkspace(cmd.Context(), opts.workspace)
	if err != nil {
		return explain(p, err)
	}
	defer ws.close()
	defer ws.setupLogging(opts.debug)()
	if opts.debug {
		p.Step("debug log: %s\n", logger.Path())
	}

	log := logger.ForGame(uuid.NewString())
	start, err := startSession(ws, f, log)
	if err != nil {
		return explain(p, err)
	}

	c := console.New(console.Deps{
		Config:  ws.cfg,
		Saves:   ws.saves,
		Scores:  ws.scores,
		Archive: ws.gameArchive(cmd.Context(), log),
		Logger:  log,
		In:      cmd.InOrStdin(),
		Printer: p,
		Delay:   time.Duration(ws.cfg.UI.RollDelayMS) * time.Millisecond,
	})

	if f.wantsGame() {
		return c.Play(cmd.Context(), start)
	}
	return c.Run(cmd.Context())
}
