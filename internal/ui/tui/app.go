package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/usecase"
)

type screen int

const (
	screenHome screen = iota
	screenFriends
	screenLoad
	screenGame
	screenGameOver
	screenScores
	screenAbout
)

type action int

const (
	actClassic action = iota
	actFriends
	actLoad
	actScores
	actAbout
	actInit
	actQuit
)

type menuItem struct {
	title string
	desc  string
	act   action
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type slotItem struct {
	slot domain.SaveSlot
}

func (s slotItem) Title() string { return fmt.Sprintf("Game %d", s.slot.Number) }
func (s slotItem) Description() string {
	when := ""
	if !s.slot.ModTime.IsZero() {
		when = " · " + s.slot.ModTime.Format("2006-01-02 15:04")
	}
	return strings.Join(s.slot.Players, ", ") + when
}
func (s slotItem) FilterValue() string { return s.Title() }

const highScoreLimit = 10

type model struct {
	theme Theme
	deps  Deps

	scr   screen
	menu  list.Model
	slots list.Model
	names textinput.Model

	game    *gameState
	summary usecase.GameSummary
	scores  []domain.HighScore
	toast   string

	workspaceFound bool
	workspaceRoot  string
	cwd            string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := []list.Item{
		menuItem{"Classic Game", "You against the computer", actClassic},
		menuItem{"Play with Friends", fmt.Sprintf("%d to %d players on one keyboard", domain.MinPlayers, domain.MaxPlayers), actFriends},
		menuItem{"Load Game", "Resume a saved game", actLoad},
		menuItem{"High Scores", "Best final totals", actScores},
		menuItem{"About", "How Yahtzee works", actAbout},
		menuItem{"Init Workspace", "Create yahtzee.yaml and data folders here", actInit},
		menuItem{"Quit", "Exit Yahtzee", actQuit},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Yahtzee"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	sl := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	sl.Title = "Saved games"
	sl.SetShowStatusBar(false)
	sl.SetFilteringEnabled(false)
	sl.SetShowHelp(false)

	ti := textinput.New()
	ti.Placeholder = "Ana, Ben, Cy"
	ti.CharLimit = 200

	m := model{
		theme: t,
		deps:  deps,
		scr:   screenHome,
		menu:  l,
		slots: sl,
		names: ti,
	}

	wd, err := os.Getwd()
	if err == nil {
		m.cwd = wd
		if deps.WorkspaceLocator != nil {
			root, findErr := deps.WorkspaceLocator.FindRoot(wd)
			if findErr == nil {
				m.workspaceFound = true
				m.workspaceRoot = root
			}
		}
	}

	return m
}

func (m model) Init() tea.Cmd {
	if s := m.deps.Start; s != nil {
		return func() tea.Msg { return gameStartedMsg{session: s} }
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.menu.SetSize(w-4, h-10)
		m.slots.SetSize(w-4, h-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		if msg.cwd != "" {
			m.cwd = msg.cwd
		}
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = "Init failed: " + userMessage(msg.err)
			return m, nil
		}
		m.toast = fmt.Sprintf("Workspace ready (%d created, %d kept)", len(msg.report.Created), len(msg.report.Skipped))
		return m, cmdRefreshWorkspace(m.deps)

	case scoresLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.scores = msg.entries
		m.scr = screenScores
		return m, nil

	case slotsLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		if len(msg.slots) == 0 {
			m.toast = "There are no saved games available."
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.slots))
		for _, s := range msg.slots {
			items = append(items, slotItem{slot: s})
		}
		cmd := m.slots.SetItems(items)
		m.scr = screenLoad
		return m, cmd

	case gameLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = fmt.Sprintf("Loaded game %d", msg.slot)
		return m.startGame(msg.session)

	case gameStartedMsg:
		return m.startGame(msg.session)

	case gameSavedMsg:
		if msg.err != nil {
			m.toast = "Save failed: " + userMessage(msg.err)
		} else {
			m.toast = fmt.Sprintf("Game saved to slot %d", msg.slot.Number)
		}
		return m, nil

	case gameFinishedMsg:
		if msg.err != nil {
			m.toast = "High scores not recorded: " + userMessage(msg.err)
			if m.game != nil {
				s := m.game.s
				standings := domain.HighScoresFromSession(s)
				domain.SortHighScores(standings)
				msg.summary = usecase.GameSummary{Winners: s.Winners(), Standings: standings}
			}
		}
		m.summary = msg.summary
		m.scr = screenGameOver
		return m, nil

	case botTickMsg:
		if m.scr != screenGame || m.game == nil {
			return m, nil
		}
		return m.advanceBot()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenFriends:
			return m.updateFriends(msg)
		case screenLoad:
			return m.updateLoad(msg)
		case screenGame:
			return m.updateGame(msg)
		default:
			switch msg.String() {
			case "q", "esc", "b", "enter":
				m.scr = screenHome
				m.game = nil
				return m, nil
			}
			return m, nil
		}
	}

	if m.scr == screenFriends {
		var cmd tea.Cmd
		m.names, cmd = m.names.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		m.toast = ""
		switch it.act {
		case actQuit:
			return m, tea.Quit
		case actClassic:
			s, err := m.newGame().Execute(usecase.ModeClassic, nil)
			if err != nil {
				m.toast = userMessage(err)
				return m, nil
			}
			return m.startGame(s)
		case actFriends:
			m.scr = screenFriends
			m.names.SetValue("")
			return m, m.names.Focus()
		case actLoad:
			return m, cmdListSlots(m.deps)
		case actScores:
			return m, cmdLoadScores(m.deps, highScoreLimit)
		case actAbout:
			m.scr = screenAbout
			return m, nil
		case actInit:
			root := m.cwd
			if root == "" {
				root = "."
			}
			return m, cmdInitWorkspaceHere(m.deps, root)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) updateFriends(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.names.Blur()
		m.scr = screenHome
		return m, nil
	case "enter":
		names := splitNames(m.names.Value())
		s, err := m.newGame().Execute(usecase.ModeFriends, names)
		if err != nil {
			m.toast = userMessage(err)
			return m, nil
		}
		m.names.Blur()
		m.toast = ""
		return m.startGame(s)
	}

	var cmd tea.Cmd
	m.names, cmd = m.names.Update(msg)
	return m, cmd
}

func (m model) updateLoad(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "q":
		m.scr = screenHome
		return m, nil
	case "enter":
		it, ok := m.slots.SelectedItem().(slotItem)
		if !ok {
			return m, nil
		}
		return m, cmdLoadGame(m.deps, it.slot.Number)
	}

	var cmd tea.Cmd
	m.slots, cmd = m.slots.Update(msg)
	return m, cmd
}

func (m model) newGame() *usecase.NewGame {
	opts := []usecase.NewGameOption{usecase.WithNewGameLogger(m.deps.Logger)}
	if m.deps.Source != nil {
		opts = append(opts, usecase.WithDiceSource(m.deps.Source))
	}
	return usecase.NewNewGame(m.deps.Config, opts...)
}

func (m model) rollDelay() time.Duration {
	return time.Duration(m.deps.Config.UI.RollDelayMS) * time.Millisecond
}

func splitNames(in string) []string {
	var out []string
	for _, part := range strings.Split(in, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("Yahtzee") + "\n" +
		m.theme.Subtitle.Render("Five dice, thirteen rounds, one scorecard each") + "\n"

	var workspaceBanner string
	if m.workspaceFound {
		workspaceBanner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		workspaceBanner = m.theme.Help.Render("No workspace found; using defaults. Choose Init Workspace to create one.")
	}
	if m.deps.Debug {
		workspaceBanner += "\n" + m.theme.Help.Render("debug logging on")
	}

	toast := ""
	if m.toast != "" {
		toast = "\n" + m.theme.Toast.Render(m.toast)
	}

	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • q quit")
		return wrap.Render(header + "\n" + workspaceBanner + "\n\n" + m.theme.Card.Render(m.menu.View()) + "\n" + help + toast)

	case screenFriends:
		card := m.theme.Card.Render(fmt.Sprintf("%s\n\n%s\n\n%s",
			m.theme.Title.Render("Play with Friends"),
			"Player names, separated by commas:\n"+m.names.View(),
			m.theme.Help.Render("enter start • esc back"),
		))
		return wrap.Render(header + "\n" + card + toast)

	case screenLoad:
		help := m.theme.Help.Render("↑/↓ navigate • enter load • esc back")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.slots.View()) + "\n" + help + toast)

	case screenGame:
		return wrap.Render(header + "\n" + m.viewGame() + toast)

	case screenGameOver:
		return wrap.Render(header + "\n" + m.viewGameOver() + toast)

	case screenScores:
		card := m.theme.Card.Render(m.theme.Title.Render("High Scores") + "\n\n" + renderStandings(m.scores) +
			"\n" + m.theme.Help.Render("enter/esc back"))
		return wrap.Render(header + "\n" + card)

	case screenAbout:
		card := m.theme.Card.Render(m.theme.Title.Render("About Yahtzee") + "\n\n" + aboutText +
			"\n" + m.theme.Help.Render("enter/esc back"))
		return wrap.Render(header + "\n" + card)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

const aboutText = `Yahtzee is a dice game based on Poker. Each turn you throw five dice up
to three times, holding any dice you like between throws, then score the
hand in one open field of your scorecard. Every field is used once, so
there are thirteen turns per player. Sixty-three or more in the upper
section earns a 35 point bonus, and every extra Yahtzee after a scored
one adds 100.`
