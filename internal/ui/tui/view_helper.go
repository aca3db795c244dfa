package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/nadza/Yahtzee/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

var pipRows = [domain.DieSides + 1]string{
	1: "     \n  o  \n     ",
	2: "o    \n     \n    o",
	3: "o    \n  o  \n    o",
	4: "o   o\n     \n o  o",
	5: "o   o\n  o  \no   o",
	6: "o   o\no   o\no   o",
}

func renderDice(t Theme, faces domain.Hand, held [domain.DiceCount]bool) string {
	cols := make([]string, 0, domain.DiceCount)
	for i, f := range faces {
		pips := pipRows[1]
		if f >= 1 && f <= domain.DieSides {
			pips = pipRows[f]
		}
		style, label := t.Die, fmt.Sprintf("  %d", i+1)
		if held[i] {
			style, label = t.HeldDie, fmt.Sprintf(" [%d]", i+1)
		}
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Center, style.Render(pips), label), " ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// renderCard lists every field. Open fields show the pending value in
// parentheses; cursor selects an entry of card.OpenCategories(), -1 for none.
func renderCard(t Theme, name string, card *domain.ScoreCard, pending *domain.Scores, cursor int) string {
	selected := domain.Category(-1)
	if open := card.OpenCategories(); cursor >= 0 && cursor < len(open) {
		selected = open[cursor]
	}

	var b strings.Builder
	b.WriteString(t.Title.Render(clampString(name, 20)+"'s scorecard") + "\n")
	for _, c := range domain.AllCategories() {
		if c == domain.ThreeOfAKind {
			b.WriteString("\n")
		}

		value := "-"
		switch {
		case card.IsSet(c) && card.Slot(c).State() == domain.SlotNoBonus:
			value = "no bonus"
		case card.IsSet(c):
			value = fmt.Sprintf("%d", card.Value(c))
		case pending != nil && c.IsDirectlyScorable():
			value = fmt.Sprintf("(%d)", pending.Get(c))
		}

		line := fmt.Sprintf("%-20s %8s", c.String(), value)
		switch {
		case c == selected:
			b.WriteString(t.Selected.Render("› " + line))
		case card.IsSet(c) && c.IsDirectlyScorable():
			b.WriteString(t.Filled.Render("  " + line))
		default:
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderTotals is a one-line running total for every seat.
func renderTotals(players []domain.Player) string {
	parts := make([]string, 0, len(players))
	for _, p := range players {
		total := p.Card.Value(domain.Bonus)
		for _, c := range domain.ScorableCategories() {
			total += p.Card.Value(c)
		}
		parts = append(parts, fmt.Sprintf("%s %d", clampString(p.Name, 12), total))
	}
	return strings.Join(parts, " · ")
}

func renderStandings(entries []domain.HighScore) string {
	if len(entries) == 0 {
		return "(no scores yet)\n"
	}
	var b strings.Builder
	for i, e := range entries {
		fmt.Fprintf(&b, "%2d. %-20s %4d\n", i+1, clampString(e.Name, 20), e.Score)
	}
	return b.String()
}
