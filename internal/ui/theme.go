// Package ui holds the shared look of the CLI and TUI: a small set of
// lipgloss styles and the progress table renderer.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	cPrimary = lipgloss.Color("36")  // teal
	cAccent  = lipgloss.Color("220") // gold
	cGood    = lipgloss.Color("42")  // green
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
)

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	Header   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good     = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Bad      = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Muted    = lipgloss.NewStyle().Foreground(cMuted)
	Selected = lipgloss.NewStyle().Bold(true).Foreground(cAccent)

	Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(cMuted).
		Padding(0, 1)
)

// Banner renders the centered dashed heading shown at the top of every
// screen.
func Banner(text string) string {
	return Title.Render(center(" "+text+" ", len(text)+12, '-'))
}

func center(s string, width int, pad rune) string {
	if len(s) >= width {
		return s
	}
	total := width - len(s)
	left := total / 2
	return strings.Repeat(string(pad), left) + s + strings.Repeat(string(pad), total-left)
}
