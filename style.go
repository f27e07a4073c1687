package main

import "github.com/charmbracelet/lipgloss"

var (
	hintBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	folderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	folderCollapsedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	fileIdleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	filePrevStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	fileNeedsConfigStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196"))

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true)

	plotBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("238")).
			Foreground(lipgloss.Color("246")).
			Padding(0, 1)

	errorLogStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	warningLogStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("215"))

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 2)

	dialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("63"))

	fieldLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("248")).
			Width(20)

	fieldFocusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Width(20)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))
)

// fileRowStyle picks the render style for an entry row. Plotted and active
// rows carry the entry's plot color as background so the sidebar doubles as
// the legend.
func fileRowStyle(e *FileEntry) lipgloss.Style {
	switch e.State {
	case StateActive:
		return lipgloss.NewStyle().Bold(true).
			Background(lipgloss.Color(e.Color.Hex())).
			Foreground(lipgloss.Color("231"))
	case StatePlotted:
		return lipgloss.NewStyle().
			Background(lipgloss.Color(e.Color.Hex())).
			Foreground(lipgloss.Color("231"))
	case StateNeedsConfig:
		return fileNeedsConfigStyle
	case StatePreviouslyPlotted:
		return filePrevStyle
	default:
		return fileIdleStyle
	}
}
