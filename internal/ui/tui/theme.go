package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Toast    lipgloss.Style

	Die      lipgloss.Style
	HeldDie  lipgloss.Style
	Selected lipgloss.Style
	Filled   lipgloss.Style
	Winner   lipgloss.Style
}

func DefaultTheme() Theme {
	die := lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.RoundedBorder())

	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Toast: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),

		Die:      die,
		HeldDie:  die.BorderForeground(lipgloss.Color("42")).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Filled:   lipgloss.NewStyle().Faint(true),
		Winner:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	}
}
