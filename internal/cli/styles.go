package cli

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	toastOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	toastErrStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	assistantStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)
