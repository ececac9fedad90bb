package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.Color("39")  // blue
	colorAccent  = lipgloss.Color("208") // orange
	colorSuccess = lipgloss.Color("42")
	colorDanger  = lipgloss.Color("196")
	colorMuted   = lipgloss.Color("241")

	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	focusedPanelStyle = panelStyle.
				BorderForeground(colorPrimary)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	paymentStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger)

	sliderThumbStyle = lipgloss.NewStyle().Foreground(colorAccent)
	sliderTrackStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
