package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorError  = lipgloss.Color("9")
	colorStatus = lipgloss.Color("10")
	colorLive   = lipgloss.Color("13")
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	headerStyle     = lipgloss.NewStyle().Faint(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	statusStyle     = lipgloss.NewStyle().Foreground(colorStatus)
	liveStyle       = lipgloss.NewStyle().Bold(true).Foreground(colorLive)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
