package tui

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const crashToast = "Unexpected error (see logs)"

// safeModel keeps a panic in one turn from killing the terminal session.
// The game in progress is dropped and the home screen comes back.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	return safeModel{m: m, log: Deps{Logger: log}.logger()}
}

func (s safeModel) Init() tea.Cmd { return s.m.Init() }

func (s safeModel) logPanic(where string, r any) {
	attrs := []any{
		"where", where,
		"screen", int(s.m.scr),
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	}
	if s.m.game != nil {
		p := s.m.game.s.Current()
		attrs = append(attrs, "round", s.m.game.s.Round(), "player", p.Name)
	}
	s.log.Error("panic.recovered", attrs...)
}

func (s safeModel) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		s.logPanic("tui.update", r)
		s.m.scr = screenHome
		s.m.game = nil
		s.m.toast = crashToast
		next, cmd = s, nil
	}()

	inner, c := s.m.Update(msg)
	switch v := inner.(type) {
	case model:
		s.m = v
	case safeModel:
		s = v
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.view", r)
			out = s.m.theme.Toast.Render(crashToast)
		}
	}()
	return s.m.View()
}

var _ tea.Model = (*safeModel)(nil)
