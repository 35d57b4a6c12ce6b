package widgets

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	headerRowStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorMantle).
			Bold(true)

	rowStyle       = lipgloss.NewStyle().Foreground(colorText)
	cursorRowStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Background(colorSurface).
			Bold(true)
	selectedMarkStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	statusStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	statusErrStyle = lipgloss.NewStyle().Foreground(colorError)
	sortTagStyle   = lipgloss.NewStyle().Foreground(colorDim)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorMuted)

	filterPromptStyle = lipgloss.NewStyle().Foreground(colorSuccess)
)
