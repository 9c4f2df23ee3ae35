package browse

import "github.com/charmbracelet/lipgloss"

var (
	highlightColor = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	subtleColor    = lipgloss.AdaptiveColor{Light: "#D9D9D9", Dark: "#383838"}
	accentColor    = lipgloss.AdaptiveColor{Light: "#00BBFF", Dark: "#00BBFF"}
	errorColor     = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			MarginBottom(1)

	itemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedItemStyle = itemStyle.
				Foreground(highlightColor).
				Bold(true)

	dirStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	fileStyle = lipgloss.NewStyle().Foreground(subtleColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(subtleColor).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().Foreground(errorColor)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(highlightColor).
			Padding(1, 2)

	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
)
