package tui

import "github.com/charmbracelet/lipgloss"

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("230")).
	Background(lipgloss.Color("25")).
	Padding(0, 1)

var buttonStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252")).
	Background(lipgloss.Color("237")).
	Padding(0, 2).
	MarginRight(1)

var activeButtonStyle = buttonStyle.
	Foreground(lipgloss.Color("231")).
	Background(lipgloss.Color("32")).
	Bold(true)

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240"))

var focusedPanelStyle = panelStyle.
	BorderForeground(lipgloss.Color("32"))

var selectedStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("231")).
	Background(lipgloss.Color("24"))

var dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))

var successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))

var warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
