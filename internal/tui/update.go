package tui

import (
	"errors"
	"fmt"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"geotrack/internal/form"
	"geotrack/internal/geom"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		lay := m.layout()
		m.l.SetSize(lay.leftW-2, lay.contentH-2)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.focusForm {
			return m.updateForm(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "esc", "e":
			m.showSidebar = false
			m.showAttrs = false
			m.focusForm = true
			m.setFocus(m.focus)
			m.setStatus("editing locations")
			return m, nil
		case "+", "=":
			if c := m.surface(); c != nil {
				c.zoomBy(1)
				m.setStatus(fmt.Sprintf("zoom: %d", c.zoom))
			}
		case "-", "_":
			if c := m.surface(); c != nil {
				c.zoomBy(-1)
				m.setStatus(fmt.Sprintf("zoom: %d", c.zoom))
			}
		case "0":
			if c := m.surface(); c != nil && len(m.committed) > 0 {
				m.layers = m.ctrl.Render(m.committed)
				m.openPopup = len(m.layers.Markers) - 1
				m.setStatus("view reset")
			}
		case "up":
			if m.showSidebar {
				break
			}
			if c := m.surface(); c != nil {
				c.pan(0, 1)
			}
		case "down":
			if m.showSidebar {
				break
			}
			if c := m.surface(); c != nil {
				c.pan(0, -1)
			}
		case "left":
			if c := m.surface(); c != nil {
				c.pan(2, 0)
			}
		case "right":
			if c := m.surface(); c != nil {
				c.pan(-2, 0)
			}
		case "i":
			if n := len(m.layers.Markers); n > 0 {
				m.openPopup = (m.openPopup + 1) % n
				m.setStatus("popup: " + m.popupText())
			} else {
				m.setStatus("no markers yet")
			}
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrs()
			}
		case "f":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
			}
		case "p":
			m.pasteMode = true
			m.ta.SetValue("")
			m.ta.Focus()
			m.setStatus("paste mode")
			return m, nil
		case "h":
			m.helpVisible = !m.helpVisible
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
			return m, nil
		}
	case tea.MouseMsg:
		m.hover(msg.X, msg.Y)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focusForm = false
		m.setFocus(m.focus)
		m.setStatus("map: arrows pan, +/- zoom, i popups, e edit")
		return m, nil
	case "enter":
		m.submit()
		return m, nil
	case "tab", "down":
		m.setFocus(m.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.syncInput(m.focus)
	return m, cmd
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.setStatus("paste cancelled")
		return m, nil
	case "enter":
		w := strings.TrimSpace(m.ta.Value())
		if w == "" {
			m.setError("paste: empty")
			return m, nil
		}
		locs, err := geom.ParseWKT(w)
		if err != nil {
			m.setError("wkt error: " + err.Error())
			return m, nil
		}
		n := m.seed(locs)
		m.pasteMode = false
		m.ta.Blur()
		m.setStatus(fmt.Sprintf("pasted %d of %d points into the form; enter to render", n, len(locs)))
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

// submit validates the drafts and, only on success, redraws the map.
func (m *Model) submit() {
	locs, err := m.form.Submit()
	if err != nil {
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			if i := m.inputIndex(verr.Index, verr.Field); i >= 0 {
				m.setFocus(i)
			}
			m.setError(fmt.Sprintf("row %d: %s %q is not a number", verr.Index+1, verr.Field, verr.Value))
		} else {
			m.setError(err.Error())
		}
		m.log.Warn("submit rejected", zap.Error(err))
		return
	}
	m.committed = locs
	m.layers = m.ctrl.Render(locs)
	// like a web map, the last bound popup stays open
	m.openPopup = len(m.layers.Markers) - 1
	m.setStatus(fmt.Sprintf("rendered %d markers, %d segments", len(m.layers.Markers), len(m.layers.Segments)))
	if m.showAttrs {
		m.refreshAttrs()
	}
}

// seed writes loaded locations into the form; it never renders.
func (m *Model) seed(locs []geom.Location) int {
	n := m.form.SeedFrom(locs)
	m.syncFromForm()
	return n
}

func (m *Model) hover(x, y int) {
	lay := m.layout()
	c := m.surface()
	cx, cy := x-lay.mapX, y-lay.mapY
	if c == nil || m.showAttrs || m.pasteMode || cx < 0 || cy < 0 || cx >= lay.mapW || cy >= lay.mapH {
		m.hoverHasGeo = false
		return
	}
	ll := c.cellToLatLng(cx, cy, lay.mapW, lay.mapH)
	m.hoverHasGeo = true
	m.hoverLat, m.hoverLon = ll.Lat, ll.Lon
	if i := c.nearestMarker(cx, cy, lay.mapW, lay.mapH, 2); i >= 0 {
		m.openPopup = i
	}
}

func (m Model) surface() *canvas { return m.engine.surface(mapContainer) }

func (m Model) popupText() string {
	if m.openPopup < 0 || m.openPopup >= len(m.layers.Markers) {
		return ""
	}
	return m.layers.Markers[m.openPopup].Label
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.statusErr = true
}
