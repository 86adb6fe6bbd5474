package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"geotrack/internal/form"
	"geotrack/internal/mapview"
)

const (
	headerHeight = 1
	footerHeight = 2
	leftWidth    = 46
)

// layout is shared by View and the mouse handler so hit testing matches what is drawn.
type layout struct {
	contentW, contentH int
	leftW              int
	mapX, mapY         int
	mapW, mapH         int
}

func (m Model) layout() layout {
	var lay layout
	lay.contentW = max(10, m.width)
	lay.contentH = max(4, m.height-headerHeight-footerHeight)
	lay.leftW = min(leftWidth, lay.contentW/2)
	lay.mapX = lay.leftW + 1
	// first map row is the popup bar
	lay.mapY = headerHeight + 1
	lay.mapW = max(8, lay.contentW-lay.mapX)
	lay.mapH = max(3, lay.contentH-1)
	return lay
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lay := m.layout()

	// Header
	header := titleStyle.Render(" geotrack ─ terminal location tracker ")
	header = lipgloss.NewStyle().Width(lay.contentW).Render(header)

	// Left panel: seed files or the form
	var left string
	if m.showSidebar {
		m.l.SetSize(lay.leftW-2, lay.contentH-2)
		left = m.l.View()
	} else {
		left = m.renderForm(lay.leftW)
	}
	left = lipgloss.NewStyle().Width(lay.leftW).Height(lay.contentH).MaxHeight(lay.contentH).Render(left)

	// Map column
	var mapCol string
	switch {
	case m.showAttrs:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(lay.mapW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lay.contentH-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		mapCol = lipgloss.Place(lay.mapW, lay.contentH, lipgloss.Center, lipgloss.Center, attrsBox)
	case m.pasteMode:
		m.ta.SetWidth(lay.mapW)
		m.ta.SetHeight(min(lay.contentH, 12))
		mapCol = lipgloss.NewStyle().Width(lay.mapW).Height(lay.contentH).Render(m.ta.View())
	default:
		mapCol = m.renderMap(lay)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", mapCol)

	// Footer / help
	statusStyle := dimStyle
	if m.statusErr {
		statusStyle = errorStyle
	}
	status := statusStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hoverHasGeo {
		coords = dimStyle.Render(fmt.Sprintf("  lat=%.5f lon=%.5f  ", m.hoverLat, m.hoverLon))
	}
	spacerW := max(0, lay.contentW-lipgloss.Width(status)-lipgloss.Width(coords))
	line1 := lipgloss.JoinHorizontal(lipgloss.Bottom, status, strings.Repeat(" ", spacerW), coords)
	line2 := m.renderHelp()
	if c := m.surface(); c != nil {
		attr := dimStyle.Render(c.attribution() + " ")
		line2 = lipgloss.JoinHorizontal(lipgloss.Bottom, line2, strings.Repeat(" ", max(0, lay.contentW-lipgloss.Width(line2)-lipgloss.Width(attr))), attr)
	}
	footer := lipgloss.JoinVertical(lipgloss.Left, line1, line2)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lay.contentW).Height(m.height).Render(ui)
}

func (m Model) renderForm(width int) string {
	rows := []string{titleStyle.Render("Locations")}
	fs := m.rowFields()
	for row := 0; row < m.form.Len(); row++ {
		label := fmt.Sprintf("Location %d", row+1)
		if row < m.form.Len()-1 {
			color := mapview.SegmentColor(m.palette, row)
			label += "  " + segmentSwatch(color)
		}
		rows = append(rows, "", dimStyle.Render(label))
		var coords []string
		for k, f := range fs {
			v := m.inputs[row*len(fs)+k].View()
			if f == form.FieldName {
				rows = append(rows, v)
				continue
			}
			coords = append(coords, v)
		}
		rows = append(rows, strings.Join(coords, "  "))
	}
	rows = append(rows, "")
	if m.focusForm {
		rows = append(rows, dimStyle.Render("tab/↑↓ move  enter show on map  esc map"))
	} else {
		rows = append(rows, dimStyle.Render("e edit locations"))
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(rows, "\n"))
}

func segmentSwatch(color string) string {
	st := dimStyle
	if c, err := mapview.ResolveColor(color); err == nil {
		st = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	return st.Render("━━ " + color)
}

func (m Model) renderMap(lay layout) string {
	c := m.surface()
	if c == nil {
		hint := dimStyle.Render(fmt.Sprintf("Enter latitude and longitude for %d locations to show them on the map.", m.form.Len()))
		return lipgloss.Place(lay.mapW, lay.contentH, lipgloss.Center, lipgloss.Center, hint)
	}
	popup := ""
	if m.openPopup >= 0 && m.openPopup < len(m.layers.Markers) {
		mk := m.layers.Markers[m.openPopup]
		popup = popupStyle.Render(fmt.Sprintf("%s %s  %.6f, %.6f", mk.Glyph, mk.Label, mk.Position.Lat, mk.Position.Lon))
	}
	popup = lipgloss.NewStyle().Width(lay.mapW).MaxWidth(lay.mapW).Render(popup)
	return lipgloss.JoinVertical(lipgloss.Left, popup, c.render(lay.mapW, lay.mapH, m.openPopup))
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"↑↓←→ pan",
		"+/- zoom",
		"0 reset",
		"i popup",
		"a table",
		"f files",
		"p paste",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
