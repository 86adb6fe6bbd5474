package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshAttrs rebuilds the table from the committed locations and current segments.
func (m *Model) refreshAttrs() {
	if len(m.committed) == 0 {
		// Do not touch table internals here to avoid re-render during SetColumns
		m.showAttrs = false
		m.setStatus("nothing rendered yet")
		return
	}
	labelW := len("label")
	for _, mk := range m.layers.Markers {
		labelW = max(labelW, len(mk.Label))
	}
	tcols := []table.Column{
		{Title: "#", Width: 3},
		{Title: "label", Width: min(labelW, 24)},
		{Title: "lat", Width: 12},
		{Title: "lon", Width: 12},
		{Title: "segment", Width: 8},
	}
	trows := make([]table.Row, 0, len(m.committed))
	for i, loc := range m.committed {
		label := ""
		if i < len(m.layers.Markers) {
			label = m.layers.Markers[i].Label
		}
		seg := ""
		if i < len(m.layers.Segments) {
			seg = m.layers.Segments[i].Color
		}
		trows = append(trows, table.Row{
			fmt.Sprintf("%d", i+1),
			label,
			fmt.Sprintf("%.6f", loc.Lat),
			fmt.Sprintf("%.6f", loc.Lon),
			seg,
		})
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
	if bb, ok := m.committed.Bounds(); ok {
		m.setStatus(fmt.Sprintf("bbox: [%.5f, %.5f, %.5f, %.5f]", bb.MinX, bb.MinY, bb.MaxX, bb.MaxY))
	}
}
