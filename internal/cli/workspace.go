package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/infra/archive"
	"github.com/nadza/Yahtzee/internal/infra/config"
	"github.com/nadza/Yahtzee/internal/infra/highscores"
	"github.com/nadza/Yahtzee/internal/infra/logger"
	"github.com/nadza/Yahtzee/internal/infra/savestore"
	"github.com/nadza/Yahtzee/internal/infra/workspacefinder"
	"github.com/nadza/Yahtzee/internal/ports"
)

type workspaceCtx struct {
	root string
	// found is false when no yahtzee.yaml exists and root is the working dir.
	found bool
	cfg   domain.Config

	saves       ports.SaveStore
	scores      ports.HighScoreStore
	closeScores func() error

	archive *archive.Store
}

func loadWorkspace(ctx context.Context, workspaceFlag string) (*workspaceCtx, error) {
	root, found, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	scores, closeScores, err := highscores.Open(ctx, root, cfg)
	if err != nil {
		return nil, err
	}

	return &workspaceCtx{
		root:        root,
		found:       found,
		cfg:         cfg,
		saves:       savestore.NewSlotStore(root, cfg),
		scores:      scores,
		closeScores: closeScores,
	}, nil
}

// openArchive opens the game history database on first use.
func (ws *workspaceCtx) openArchive(ctx context.Context) (*archive.Store, error) {
	if ws.archive != nil {
		return ws.archive, nil
	}
	path := ws.cfg.Paths.ArchiveDB
	if !filepath.IsAbs(path) {
		path = filepath.Join(ws.root, path)
	}
	st, err := archive.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	ws.archive = st
	return st, nil
}

// gameArchive is openArchive for callers that can play on without history.
func (ws *workspaceCtx) gameArchive(ctx context.Context, log *slog.Logger) ports.GameArchive {
	st, err := ws.openArchive(ctx)
	if err != nil {
		log.Warn("archive.unavailable", "error", err)
		return nil
	}
	return st
}

func (ws *workspaceCtx) close() {
	if ws.closeScores != nil {
		_ = ws.closeScores()
	}
	if ws.archive != nil {
		_ = ws.archive.Close()
	}
}

// setupLogging points the global logger at the workspace. Logging problems
// never stop a game.
func (ws *workspaceCtx) setupLogging(debug bool) func() {
	cleanup, err := logger.Setup(logger.Config{Root: ws.root, Debug: debug})
	if err != nil || cleanup == nil {
		return func() {}
	}
	return func() { _ = cleanup() }
}

// resolveWorkspaceRoot returns the explicit workspace, or the workspace above
// the working directory, or the working directory itself.
func resolveWorkspaceRoot(workspaceFlag string) (string, bool, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", false, fmt.Errorf("invalid workspace path: %w", err)
		}
		info, err := os.Stat(abs)
		if err != nil || !info.IsDir() {
			return "", false, &domain.OpError{Op: "workspace.resolve", Kind: domain.KindNotFound, Path: abs, Err: domain.ErrNotFound}
		}
		_, statErr := os.Stat(filepath.Join(abs, workspacefinder.ConfigFileName))
		return abs, statErr == nil, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}
	root, found := workspacefinder.NewFinder().RootOrDir(wd)
	return root, found, nil
}
