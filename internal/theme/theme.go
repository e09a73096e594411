// Package theme holds the lipgloss styles shared by the console and the
// full-screen interface.
package theme

import "github.com/charmbracelet/lipgloss"

var (
	Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")). // pink
		Bold(true)

	Room = lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")). // teal
		Bold(true)

	Clue = lipgloss.NewStyle().
		Foreground(lipgloss.Color("86")) // green

	Info = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")) // dark grey

	Warn = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")) // yellow

	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")) // red

	// Prompt marks text that waits for the player.
	Prompt = lipgloss.NewStyle().
		Foreground(lipgloss.Color("212")) // purple

	// Hint is used for key help and separators.
	Hint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")) // dark grey
)
