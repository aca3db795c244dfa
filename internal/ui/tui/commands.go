package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/usecase"
)

const ioTimeout = 10 * time.Second

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		report, err := usecase.NewInitWorkspace(deps.WorkspaceInitializer).Execute(root, deps.Config, false)
		return initWorkspaceDoneMsg{root: root, report: report, err: err}
	}
}

func cmdLoadScores(deps Deps, limit int) tea.Cmd {
	return func() tea.Msg {
		if deps.Scores == nil {
			return scoresLoadedMsg{err: errors.New("high score store is nil")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
		defer cancel()

		entries, err := deps.Scores.Top(ctx, limit)
		return scoresLoadedMsg{entries: entries, err: err}
	}
}

func cmdListSlots(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Saves == nil {
			return slotsLoadedMsg{err: errors.New("save store is nil")}
		}
		slots, err := deps.Saves.List()
		return slotsLoadedMsg{slots: slots, err: err}
	}
}

func cmdLoadGame(deps Deps, slot int) tea.Cmd {
	return func() tea.Msg {
		uc := usecase.NewLoadGame(deps.Saves, deps.Config, deps.Logger)
		if deps.Source != nil {
			uc.WithSource(deps.Source)
		}
		s, err := uc.Execute(slot)
		return gameLoadedMsg{slot: slot, session: s, err: err}
	}
}

// cmdSaveGame snapshots s before returning, so later turns cannot leak
// into the save.
func cmdSaveGame(deps Deps, s *domain.Session) tea.Cmd {
	snap := domain.SnapshotSession(s)
	return func() tea.Msg {
		slot, err := deps.Saves.Save(snap)
		if err == nil {
			deps.logger().Info("game.saved", "slot", slot.Number, "path", slot.Path)
		}
		return gameSavedMsg{slot: slot, err: err}
	}
}

func cmdFinishGame(deps Deps, s *domain.Session) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), ioTimeout)
		defer cancel()

		sum, err := usecase.NewFinishGame(deps.Scores, deps.Archive, deps.Logger).Execute(ctx, s)
		return gameFinishedMsg{summary: sum, err: err}
	}
}

func tickBot(d time.Duration) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return botTickMsg{} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return botTickMsg{} })
}
