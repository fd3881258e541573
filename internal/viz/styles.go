package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	chartStyle     = lipgloss.NewStyle().Padding(1, 2)
	markerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("58")).Bold(true)
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

// Channel series colors, matched between the chart and the legend.
var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Blue,
	asciigraph.Red,
	asciigraph.Green,
	asciigraph.Yellow,
}

var legendStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
}
