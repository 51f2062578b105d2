package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/showdown/poker"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	winStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lossStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	tieStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	redSuitStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	blackSuitStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
)

// renderCards draws cards with suit symbols, red suits in red.
func renderCards(cards []poker.Card) string {
	out := ""
	for i, c := range cards {
		if i > 0 {
			out += " "
		}
		style := blackSuitStyle
		if c.Suit.IsRed() {
			style = redSuitStyle
		}
		out += style.Render(c.Rank.String() + c.Suit.Symbol())
	}
	return out
}

// renderNet colours a chip or big blind delta.
func renderNet(text string, net float64) string {
	switch {
	case net > 0:
		return winStyle.Render(text)
	case net < 0:
		return lossStyle.Render(text)
	default:
		return text
	}
}
