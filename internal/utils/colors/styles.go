package colors

import "github.com/charmbracelet/lipgloss"

var (
	SuccessStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2e7d32", Dark: "#8bd450"})
	FailureStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#c62828", Dark: "#ff6b6b"})
	ProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#1565c0", Dark: "#7fb8ff"})
)
