package tui

import (
	"github.com/charmbracelet/lipgloss"

	"zoomchart/internal/scene"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")
	seriesFg  = lipgloss.Color("#61A3A9")
	guideFg   = lipgloss.Color("#FF4D4D")
	axisFg    = lipgloss.Color("#9CA3AF")
	gridFg    = lipgloss.Color("#2B3440")

	appStyle    = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
	buttonStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 2)
	activeStyle = buttonStyle.BorderForeground(accentFg).Foreground(accentFg)
)

// layerStyles colours canvas cells by the topmost layer drawn into them.
var layerStyles = map[scene.Layer]lipgloss.Style{
	scene.LayerGrid:      lipgloss.NewStyle().Foreground(gridFg),
	scene.LayerAxis:      lipgloss.NewStyle().Foreground(axisFg),
	scene.LayerLabel:     lipgloss.NewStyle().Foreground(axisFg),
	scene.LayerSeries:    lipgloss.NewStyle().Foreground(seriesFg),
	scene.LayerCrosshair: lipgloss.NewStyle().Foreground(guideFg),
}
