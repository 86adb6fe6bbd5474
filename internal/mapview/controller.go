// Package mapview turns a committed location list into the set of markers,
// popups and colored segments attached to a map surface.
package mapview

import (
	"fmt"

	"go.uber.org/zap"

	"geotrack/internal/geom"
)

const DefaultZoom = 13

type State int

const (
	Uninitialized State = iota
	Initialized
)

func (s State) String() string {
	if s == Initialized {
		return "initialized"
	}
	return "uninitialized"
}

type Marker struct {
	Handle   LayerHandle
	Position LatLng
	Label    string
	Glyph    Glyph
}

type Segment struct {
	Handle LayerHandle
	Index  int
	From   LatLng
	To     LatLng
	Color  string
}

// LayerSet is everything the controller currently has attached to the surface.
type LayerSet struct {
	Markers  []Marker
	Segments []Segment
}

func (s LayerSet) Empty() bool { return len(s.Markers) == 0 && len(s.Segments) == 0 }

func (s LayerSet) handles() []LayerHandle {
	hs := make([]LayerHandle, 0, len(s.Markers)+len(s.Segments))
	for _, m := range s.Markers {
		hs = append(hs, m.Handle)
	}
	for _, sg := range s.Segments {
		hs = append(hs, sg.Handle)
	}
	return hs
}

type Options struct {
	ContainerID string
	Zoom        int
	Palette     []string
	// NamedLabels uses each location's name as its popup; otherwise popups read "Location k".
	NamedLabels bool
	Glyph       func() Glyph
	Logger      *zap.Logger
}

// Controller owns one map surface and the layer set currently drawn on it.
type Controller struct {
	engine  Engine
	opts    Options
	log     *zap.Logger
	surface Surface
	current LayerSet
}

func New(engine Engine, opts Options) *Controller {
	if opts.ContainerID == "" {
		opts.ContainerID = "map"
	}
	if opts.Zoom == 0 {
		opts.Zoom = DefaultZoom
	}
	if len(opts.Palette) == 0 {
		opts.Palette = DefaultPalette
	}
	if opts.Glyph == nil {
		opts.Glyph = func() Glyph { return "●" }
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{engine: engine, opts: opts, log: log.Named("mapview")}
}

func (c *Controller) State() State {
	if c.surface == nil {
		return Uninitialized
	}
	return Initialized
}

// Current returns the layer set from the last non-empty render.
func (c *Controller) Current() LayerSet { return c.current }

// Render replaces whatever is on the surface with markers and segments for locs.
// An empty list is a no-op.
func (c *Controller) Render(locs geom.LocationList) LayerSet {
	if len(locs) == 0 {
		return LayerSet{}
	}
	center := LatLng{Lat: locs[0].Lat, Lon: locs[0].Lon}
	if c.surface == nil {
		c.surface = c.engine.CreateSurface(c.opts.ContainerID, center, c.opts.Zoom)
		c.surface.AddTileLayer(TileURL, Attribution)
		c.log.Debug("surface created", zap.String("container", c.opts.ContainerID), zap.Int("zoom", c.opts.Zoom))
	} else {
		c.surface.SetView(center, c.opts.Zoom)
	}
	c.dispose()

	var set LayerSet
	for i, loc := range locs {
		m := Marker{
			Position: LatLng{Lat: loc.Lat, Lon: loc.Lon},
			Label:    c.label(i, loc),
			Glyph:    c.opts.Glyph(),
		}
		m.Handle = c.surface.AddMarker(m.Position, m.Glyph, m.Label)
		set.Markers = append(set.Markers, m)
	}
	for i := 0; i+1 < len(locs); i++ {
		sg := Segment{
			Index: i,
			From:  set.Markers[i].Position,
			To:    set.Markers[i+1].Position,
			Color: SegmentColor(c.opts.Palette, i),
		}
		sg.Handle = c.surface.AddPolyline([]LatLng{sg.From, sg.To}, sg.Color)
		set.Segments = append(set.Segments, sg)
	}
	c.current = set
	c.log.Info("rendered", zap.Int("markers", len(set.Markers)), zap.Int("segments", len(set.Segments)))
	return set
}

// dispose removes every layer of the current set from the surface.
func (c *Controller) dispose() {
	hs := c.current.handles()
	for _, h := range hs {
		c.surface.RemoveLayer(h)
	}
	if len(hs) > 0 {
		c.log.Debug("disposed layers", zap.Int("count", len(hs)))
	}
	c.current = LayerSet{}
}

func (c *Controller) label(i int, loc geom.Location) string {
	if c.opts.NamedLabels {
		return loc.Name
	}
	return fmt.Sprintf("Location %d", i+1)
}
