package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"geotrack/internal/form"
	"geotrack/internal/geom"
	"geotrack/internal/mapview"
)

const mapContainer = "map"

// Options configures a Model.
type Options struct {
	Named   bool
	Points  int
	Seed    bool
	Zoom    int
	Palette []string
	Logger  *zap.Logger
}

type Model struct {
	width  int
	height int

	log *zap.Logger

	helpVisible bool
	status      string
	statusErr   bool

	// Form
	named     bool
	form      *form.Form
	inputs    []textinput.Model
	focus     int
	focusForm bool

	// Map
	engine    *canvasEngine
	ctrl      *mapview.Controller
	palette   []string
	committed geom.LocationList
	layers    mapview.LayerSet
	openPopup int

	// File explorer
	showSidebar bool
	cwd         string
	l           list.Model
	items       []list.Item

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// locations table
	showAttrs bool
	tbl       table.Model

	// hover state
	hoverHasGeo bool
	hoverLat    float64
	hoverLon    float64
}

func New(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Points < 1 {
		opts.Points = 2
	}
	if len(opts.Palette) == 0 {
		opts.Palette = mapview.DefaultPalette
	}
	m := Model{
		log:         log.Named("tui"),
		helpVisible: true,
		status:      "geotrack ready",
		named:       opts.Named,
		focusForm:   true,
		palette:     opts.Palette,
		openPopup:   -1,
	}
	var seed []form.DraftEntry
	if opts.Seed {
		seed = form.SampleSeed(opts.Points, opts.Named)
	}
	m.form = form.New(opts.Points, seed)
	m.engine = newCanvasEngine()
	m.ctrl = mapview.New(m.engine, mapview.Options{
		ContainerID: mapContainer,
		Zoom:        opts.Zoom,
		Palette:     opts.Palette,
		NamedLabels: opts.Named,
		Glyph:       markerGlyph,
		Logger:      log,
	})

	// one input per editable field, row-major
	for row := 0; row < m.form.Len(); row++ {
		for _, f := range m.rowFields() {
			ti := textinput.New()
			switch f {
			case form.FieldName:
				ti.Prompt = "name "
				ti.Placeholder = "optional"
				ti.Width = 24
			case form.FieldLatitude:
				ti.Prompt = "lat "
				ti.Placeholder = "latitude"
				ti.Width = 12
			case form.FieldLongitude:
				ti.Prompt = "lon "
				ti.Placeholder = "longitude"
				ti.Width = 12
			}
			m.inputs = append(m.inputs, ti)
		}
	}
	m.syncFromForm()
	m.setFocus(0)

	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Seed files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste WKT here (POINT, MULTIPOINT, LINESTRING). Press Enter to fill the form; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// locations table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	return m
}

// NewWithPath preloads a seed file into the form at launch.
func NewWithPath(opts Options, path string) Model {
	m := New(opts)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) rowFields() []form.Field {
	if m.named {
		return []form.Field{form.FieldName, form.FieldLatitude, form.FieldLongitude}
	}
	return []form.Field{form.FieldLatitude, form.FieldLongitude}
}

// fieldAt maps an input index to its form row and field.
func (m Model) fieldAt(i int) (int, form.Field) {
	fs := m.rowFields()
	return i / len(fs), fs[i%len(fs)]
}

// inputIndex is the inverse of fieldAt; it returns -1 for a hidden field.
func (m Model) inputIndex(row int, field form.Field) int {
	fs := m.rowFields()
	for k, f := range fs {
		if f == field {
			return row*len(fs) + k
		}
	}
	return -1
}

func draftValue(e form.DraftEntry, f form.Field) string {
	switch f {
	case form.FieldName:
		return e.Name
	case form.FieldLatitude:
		return e.LatitudeText
	}
	return e.LongitudeText
}

// syncFromForm copies the drafts into the inputs.
func (m *Model) syncFromForm() {
	for i := range m.inputs {
		row, f := m.fieldAt(i)
		m.inputs[i].SetValue(draftValue(m.form.Entry(row), f))
	}
}

// syncInput pushes one input's text into the form if it changed.
func (m *Model) syncInput(i int) {
	row, f := m.fieldAt(i)
	if v := m.inputs[i].Value(); v != draftValue(m.form.Entry(row), f) {
		m.form.UpdateField(row, f, v)
	}
}

// setField edits one draft field and mirrors it into its input, if visible.
func (m *Model) setField(row int, f form.Field, value string) {
	m.form.UpdateField(row, f, value)
	if i := m.inputIndex(row, f); i >= 0 {
		m.inputs[i].SetValue(value)
	}
}

func (m *Model) setFocus(i int) {
	n := len(m.inputs)
	i = ((i % n) + n) % n
	for k := range m.inputs {
		m.inputs[k].Blur()
	}
	m.focus = i
	if m.focusForm {
		m.inputs[i].Focus()
	}
}
