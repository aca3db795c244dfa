package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nadza/Yahtzee/internal/domain"
	"github.com/nadza/Yahtzee/internal/usecase"
)

type gameState struct {
	s *domain.Session

	// cursor indexes the open categories while a human picks a field.
	cursor int

	askSave bool
	last    string

	// Bot turns are played at once and replayed roll by roll.
	botRolls []domain.Hand
	botSeat  domain.Player
	botIdx   int
	botRound int
	botShown int
	botLine  string
	botAdv   domain.TurnAdvance
}

func (m model) startGame(s *domain.Session) (tea.Model, tea.Cmd) {
	m.game = &gameState{s: s}
	m.scr = screenGame
	if s.IsGameOver() {
		return m, cmdFinishGame(m.deps, s)
	}
	return m.nextTurn()
}

// nextTurn starts a bot turn when the current seat is automated.
func (m model) nextTurn() (tea.Model, tea.Cmd) {
	g := m.game
	p, idx, round := g.s.Current(), g.s.CurrentIndex(), g.s.Round()
	if !p.Bot || g.s.Phase() != domain.PhaseAwaitingRoll {
		return m, nil
	}

	uc := usecase.NewPlayBotTurn(usecase.WithBotLogger(m.deps.Logger))
	res, err := uc.Execute(context.Background(), g.s, nil)
	if err != nil {
		m.toast = userMessage(err)
		return m, nil
	}

	g.botRolls = res.Rolls
	g.botSeat = p
	g.botIdx = idx
	g.botRound = round
	g.botShown = 0
	g.botAdv = res.Advance
	if res.AutoYahtzeeBonus {
		g.botLine = fmt.Sprintf("%s rolled another Yahtzee! +%d", res.Player, g.s.Rules().YahtzeeBonus)
	} else {
		g.botLine = fmt.Sprintf("%s scored %d in %s", res.Player, res.Value, res.Category)
	}
	return m, tickBot(m.rollDelay())
}

func (m model) advanceBot() (tea.Model, tea.Cmd) {
	g := m.game
	if len(g.botRolls) == 0 {
		return m, nil
	}
	g.botShown++
	if g.botShown < len(g.botRolls) {
		return m, tickBot(m.rollDelay())
	}

	g.botRolls = nil
	g.last = g.botLine
	return m.afterTurn(g.botAdv)
}

func (m model) afterTurn(adv domain.TurnAdvance) (tea.Model, tea.Cmd) {
	g := m.game
	g.cursor = 0
	if adv.GameOver {
		return m, cmdFinishGame(m.deps, g.s)
	}
	if adv.RoundComplete {
		g.askSave = true
		return m, nil
	}
	return m.nextTurn()
}

func (m model) updateGame(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	g := m.game
	key := msg.String()

	if key == "q" || key == "esc" {
		m.scr = screenHome
		m.game = nil
		m.toast = "Game left without saving the current round"
		return m, nil
	}

	if g.askSave {
		switch key {
		case "y":
			g.askSave = false
			cmd := cmdSaveGame(m.deps, g.s)
			next, more := m.nextTurn()
			return next, tea.Batch(cmd, more)
		case "n":
			g.askSave = false
			return m.nextTurn()
		}
		return m, nil
	}

	if len(g.botRolls) > 0 {
		return m, nil
	}

	switch g.s.Phase() {
	case domain.PhaseAwaitingRoll, domain.PhaseRolled:
		switch key {
		case "r", " ":
			out, err := g.s.Roll()
			if err != nil {
				m.toast = userMessage(err)
				return m, nil
			}
			m.toast = ""
			if out.Evaluation != nil {
				return m.evaluated(*out.Evaluation)
			}
		case "1", "2", "3", "4", "5":
			if g.s.Phase() != domain.PhaseRolled {
				return m, nil
			}
			i := int(key[0] - '1')
			if err := g.s.Hold(i, !g.s.Held()[i]); err != nil {
				m.toast = userMessage(err)
			}
		case "s", "enter":
			if g.s.Phase() != domain.PhaseRolled {
				return m, nil
			}
			ev, err := g.s.Stop()
			if err != nil {
				m.toast = userMessage(err)
				return m, nil
			}
			return m.evaluated(ev)
		}

	case domain.PhaseMustScore:
		open := g.s.Current().Card.OpenCategories()
		switch key {
		case "up", "k":
			if g.cursor > 0 {
				g.cursor--
			}
		case "down", "j":
			if g.cursor < len(open)-1 {
				g.cursor++
			}
		case "enter":
			if g.cursor >= len(open) {
				return m, nil
			}
			res, err := g.s.Score(open[g.cursor])
			if err != nil {
				m.toast = userMessage(err)
				return m, nil
			}
			g.last = fmt.Sprintf("%s scored %d in %s", res.Player, res.Value, res.Category)
			return m.afterTurn(res.Advance)
		}
	}
	return m, nil
}

func (m model) evaluated(ev domain.TurnEvaluation) (tea.Model, tea.Cmd) {
	g := m.game
	if ev.AutoYahtzeeBonus {
		g.last = fmt.Sprintf("%s rolled another Yahtzee! +%d", ev.Player, g.s.Rules().YahtzeeBonus)
		return m.afterTurn(*ev.Advance)
	}

	g.cursor = 0
	best, err := g.s.BestCategory()
	if err == nil {
		for i, c := range g.s.Current().Card.OpenCategories() {
			if c == best {
				g.cursor = i
				break
			}
		}
	}
	return m, nil
}

func (m model) viewGame() string {
	g := m.game
	if g == nil {
		return ""
	}
	s := g.s
	p := s.Current()
	seat, round := s.CurrentIndex(), s.Round()
	faces := s.Faces()
	held := s.Held()
	if len(g.botRolls) > 0 {
		p, seat, round = g.botSeat, g.botIdx, g.botRound
		faces = g.botRolls[min(g.botShown, len(g.botRolls)-1)]
		held = [domain.DiceCount]bool{}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", m.theme.Title.Render(fmt.Sprintf("Round %d/%d · %s (%d of %d)",
		round, len(domain.ScorableCategories()), p.Name, seat+1, s.PlayerCount())))

	b.WriteString(renderDice(m.theme, faces, held))
	b.WriteString("\n")

	var pending *domain.Scores
	cursor := -1
	switch {
	case len(g.botRolls) > 0:
	case s.Phase() == domain.PhaseMustScore:
		if scores, ok := s.Pending(); ok {
			pending = &scores
			cursor = g.cursor
		}
	case s.Phase() == domain.PhaseRolled:
		preview := s.Preview()
		pending = &preview
	}
	b.WriteString(m.theme.Card.Render(renderCard(m.theme, p.Name, p.Card, pending, cursor)))
	b.WriteString("\n")
	b.WriteString(renderTotals(s.Players()))
	b.WriteString("\n")

	if g.last != "" {
		b.WriteString(g.last + "\n")
	}

	var help string
	switch {
	case g.askSave:
		help = "Round complete. Save the game? y/n"
	case len(g.botRolls) > 0:
		help = fmt.Sprintf("%s is rolling…", p.Name)
	case s.Phase() == domain.PhaseAwaitingRoll:
		help = "r roll • q leave"
	case s.Phase() == domain.PhaseRolled:
		help = fmt.Sprintf("1-5 hold/release • r roll (%d left) • s score • q leave", s.RollsLeft())
	case s.Phase() == domain.PhaseMustScore:
		help = "↑/↓ choose field • enter score • q leave"
	}
	b.WriteString(m.theme.Help.Render(help))
	return b.String()
}

func (m model) viewGameOver() string {
	sum := m.summary
	names := make([]string, 0, len(sum.Winners))
	for _, w := range sum.Winners {
		names = append(names, w.Name)
	}

	body := m.theme.Title.Render("Game over") + "\n\n" +
		renderStandings(sum.Standings) + "\n" +
		m.theme.Winner.Render("Winner: "+strings.Join(names, ", ")) + "\n\n" +
		m.theme.Help.Render("enter back to menu")
	return m.theme.Card.Render(body)
}
