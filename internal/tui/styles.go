package tui

import (
	"github.com/charmbracelet/lipgloss"

	"geotrack/internal/mapview"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	markerFg  = lipgloss.Color("#FFA500")
	errorFg   = lipgloss.Color("#F87171")
	borderCol = lipgloss.Color("#243141")

	appStyle        = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle      = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle        = lipgloss.NewStyle().Foreground(baseDimFg)
	errorStyle      = lipgloss.NewStyle().Foreground(errorFg)
	markerStyle     = lipgloss.NewStyle().Foreground(markerFg)
	openMarkerStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	popupStyle      = lipgloss.NewStyle().Foreground(baseFg).Background(lipgloss.Color("#1F2937")).Padding(0, 1)
)

// markerGlyph is the visual handed to the map controller for every marker.
func markerGlyph() mapview.Glyph { return "◉" }
