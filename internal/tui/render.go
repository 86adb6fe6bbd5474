package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"geotrack/internal/mapview"
)

// render draws the canvas into w x h cells: polylines as colored braille,
// markers as their glyph on top. The marker at index open is highlighted.
func (c *canvas) render(w, h, open int) string {
	br := newBrailleBuf(w, h)
	for _, pl := range c.ofKind(polylineLayer) {
		var prev *[2]int
		for _, p := range pl.coords {
			mx, my := c.screenXYMicro(p, w, h)
			if prev != nil {
				br.drawLineMicro(prev[0], prev[1], mx, my, pl.color)
			}
			prev = &[2]int{mx, my}
		}
	}

	type placed struct {
		glyph mapview.Glyph
		open  bool
	}
	markers := map[[2]int]placed{}
	for i, mk := range c.ofKind(markerLayer) {
		x, y := c.screenXY(mk.coords[0], w, h)
		if x < 0 || y < 0 || x >= w || y >= h {
			continue
		}
		markers[[2]int{x, y}] = placed{glyph: mk.glyph, open: i == open}
	}

	styles := map[string]lipgloss.Style{}
	styleFor := func(color string) lipgloss.Style {
		if s, ok := styles[color]; ok {
			return s
		}
		s := lipgloss.NewStyle().Foreground(baseFg)
		if col, err := mapview.ResolveColor(color); err == nil {
			s = lipgloss.NewStyle().Foreground(lipgloss.Color(col.Hex()))
		}
		styles[color] = s
		return s
	}

	lines := make([]string, h)
	var sb strings.Builder
	for y := 0; y < h; y++ {
		sb.Reset()
		for x := 0; x < w; x++ {
			if mk, ok := markers[[2]int{x, y}]; ok {
				st := markerStyle
				if mk.open {
					st = openMarkerStyle
				}
				sb.WriteString(st.Render(string(mk.glyph)))
				continue
			}
			r, color := br.cell(x, y)
			if r == ' ' {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteString(styleFor(color).Render(string(r)))
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// nearestMarker returns the index of the marker closest to cell (x, y)
// within radius cells, or -1.
func (c *canvas) nearestMarker(x, y, w, h, radius int) int {
	best, bestD := -1, radius*radius+1
	for i, mk := range c.ofKind(markerLayer) {
		sx, sy := c.screenXY(mk.coords[0], w, h)
		dx := sx - x
		dy := (sy - y) * 2 // cells are twice as tall as wide
		d := dx*dx + dy*dy
		if d < bestD {
			best, bestD = i, d
		}
	}
	return best
}
