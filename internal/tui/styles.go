package tui

import "github.com/charmbracelet/lipgloss"

// Tokyo Night palette.
const (
	colorFg     = "#c0caf5"
	colorDim    = "#565f89"
	colorBorder = "#3b4261"
	colorGreen  = "#16a34a"
	colorSystem = "#e0af68"
	colorError  = "#f7768e"
	colorAccent = "#7dcfff"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorAccent)).
			Bold(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorDim))

	systemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorSystem)).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorError)).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorBorder))

	sectionLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(colorAccent)).
				Bold(true)

	userNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorGreen)).
			Bold(true)

	bodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorFg))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorDim))

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorBorder)).
			Padding(0, 1)

	chatBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorBorder))
)

// agentNameStyle renders an agent's display name in its configured color.
func agentNameStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
}
