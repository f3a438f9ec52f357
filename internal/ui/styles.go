package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	faintColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#8b8b8b"}
	okColor    = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	errColor   = lipgloss.AdaptiveColor{Light: "#770000", Dark: "#AA0000"}

	// Coordinates are context; the distance sentence is the answer.
	coordsStyle = lipgloss.NewStyle().Foreground(faintColor)
	answerStyle = lipgloss.NewStyle().Foreground(okColor).Bold(true)

	frameStyle = lipgloss.NewStyle().Margin(1, 2)
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("32")).
			Padding(0, 1)
	unitStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().PaddingTop(1)
	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#8E8E8E", Dark: "#747373"})
)

var errLinePfx = lipgloss.NewStyle().Background(errColor).Bold(true).Render(" ERR ") + " "

// RenderErrorLine formats err as a single highlighted line.
func RenderErrorLine(err error) string {
	return errLinePfx + err.Error()
}
