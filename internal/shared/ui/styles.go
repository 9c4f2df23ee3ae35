package ui

import "github.com/charmbracelet/lipgloss"

var (
	AccentColor  = lipgloss.AdaptiveColor{Light: "#00BBFF", Dark: "#00BBFF"}
	SubtleColor  = lipgloss.AdaptiveColor{Light: "#D9D9D9", Dark: "#383838"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}

	HeaderStyle = lipgloss.NewStyle().
			Foreground(AccentColor).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(AccentColor)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	StatusSuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	StatusErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
)

// Success renders a green check-marked status line.
func Success(msg string) string {
	return StatusSuccessStyle.Render("✓ " + msg)
}

// Failure renders a red cross-marked status line.
func Failure(msg string) string {
	return StatusErrorStyle.Render("❌ " + msg)
}
