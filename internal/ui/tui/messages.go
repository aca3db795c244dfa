package tui

import (
	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/usecase"
)

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root   string
	report domain.InitReport
	err    error
}

type scoresLoadedMsg struct {
	entries []domain.HighScore
	err     error
}

type slotsLoadedMsg struct {
	slots []domain.SaveSlot
	err   error
}

type gameLoadedMsg struct {
	slot    int
	session *domain.Session
	err     error
}

type gameStartedMsg struct {
	session *domain.Session
}

type gameSavedMsg struct {
	slot domain.SaveSlot
	err  error
}

type gameFinishedMsg struct {
	summary usecase.GameSummary
	err     error
}

// botTickMsg reveals the next bot roll.
type botTickMsg struct{}
