package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/nadza/Yahtzee/internal/domain"
)

const rule = "=================================================="

var pips = [domain.DieSides + 1][3]string{
	1: {"|     |", "|  o  |", "|     |"},
	2: {"|     |", "|o   o|", "|     |"},
	3: {"|o    |", "|  o  |", "|    o|"},
	4: {"|o   o|", "|     |", "|o   o|"},
	5: {"|o   o|", "|  o  |", "|o   o|"},
	6: {"|o   o|", "|o   o|", "|o   o|"},
}

// renderDice draws the hand side by side with die numbers underneath and
// held dice marked.
func renderDice(h domain.Hand, held [domain.DiceCount]bool) string {
	rows := make([][]string, 6)
	for i, f := range h {
		face := pips[1]
		if f >= 1 && f <= domain.DieSides {
			face = pips[f]
		}
		rows[0] = append(rows[0], " _____ ")
		rows[1] = append(rows[1], face[0])
		rows[2] = append(rows[2], face[1])
		rows[3] = append(rows[3], face[2])
		rows[4] = append(rows[4], " ‾‾‾‾‾ ")

		label := fmt.Sprintf("  %d    ", i+1)
		if held[i] {
			label = fmt.Sprintf(" [%d]   ", i+1)
		}
		rows[5] = append(rows[5], label)
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(strings.TrimRight(strings.Join(r, " "), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// renderCard prints the card in field order. When pending is set, open
// fields show the value the current hand would score there.
func renderCard(w io.Writer, name string, card *domain.ScoreCard, pending *domain.Scores) {
	fmt.Fprintf(w, "\n%s's SCORE CARD\n", name)
	fmt.Fprintln(w, "===============================")

	section := func(title string, from, to domain.Category) {
		fmt.Fprintln(w, title)
		fmt.Fprintln(w, "-------------")
		for c := from; c <= to; c++ {
			fmt.Fprintf(w, "%2d %-22s %s\n", int(c), strings.ToUpper(c.String()), cell(card, c, pending))
		}
		fmt.Fprintln(w)
	}
	section("UPPER SECTION", domain.Aces, domain.UpperTotal)
	section("LOWER SECTION", domain.ThreeOfAKind, domain.LowerTotal)

	fmt.Fprintf(w, "   %-22s %s\n", "FINAL TOTAL", cell(card, domain.GrandTotal, nil))
}

func cell(card *domain.ScoreCard, c domain.Category, pending *domain.Scores) string {
	if card.IsSet(c) {
		if card.Slot(c).State() == domain.SlotNoBonus {
			return "---"
		}
		return fmt.Sprintf("%d ✓", card.Value(c))
	}
	if pending != nil && c.IsDirectlyScorable() {
		return fmt.Sprintf("%d", pending.Get(c))
	}
	return "---"
}

func renderStandings(w io.Writer, title string, entries []domain.HighScore) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%s\n", title)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%-20s %s\n", "Player", "Score")
	fmt.Fprintln(w, "--------------------------")
	for _, e := range entries {
		fmt.Fprintf(w, "%-20s %d\n", e.Name, e.Score)
	}
	fmt.Fprintln(w)
}

func categoryHelp() string {
	parts := make([]string, 0, len(domain.ScorableCategories()))
	for _, c := range domain.ScorableCategories() {
		parts = append(parts, fmt.Sprintf("%d: %s", int(c), c))
	}
	return strings.Join(parts, ", ")
}

func joinNames(players []domain.Player) string {
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name)
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

const aboutText = `Yahtzee is a dice game based on Poker. The object of the game is to roll
certain combinations of numbers with five dice.
At each turn you throw the dice up to three times trying to get a good
combination; different combinations give different scores.
Each combination can be scored only once, and there are as many
combinations as turns, so choose carefully where to score each hand.
`

// WriteCard prints a finished or saved card without pending values.
func WriteCard(w io.Writer, name string, card *domain.ScoreCard) {
	renderCard(w, name, card, nil)
}

// WriteStandings prints a titled name/score table.
func WriteStandings(w io.Writer, title string, entries []domain.HighScore) {
	renderStandings(w, title, entries)
}
