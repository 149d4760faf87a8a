package feed

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title       lipgloss.Style
	header      lipgloss.Style
	author      lipgloss.Style
	timestamp   lipgloss.Style
	edited      lipgloss.Style
	description lipgloss.Style
	section     lipgloss.Style
	empty       lipgloss.Style
	notice      lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:       lipgloss.NewStyle().Bold(true),
		header:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		author:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		timestamp:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		edited:      lipgloss.NewStyle().Faint(true),
		description: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		section:     lipgloss.NewStyle().MarginTop(1),
		empty:       lipgloss.NewStyle().Faint(true),
		notice:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	}
}
