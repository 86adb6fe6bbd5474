package mapview

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"

	"geotrack/internal/geom"
)

// --- recording engine ---

type call struct {
	op    string
	at    LatLng
	text  string
	color string
}

type fakeEngine struct {
	created []string
	surface *fakeSurface
}

func (e *fakeEngine) CreateSurface(containerID string, center LatLng, zoom int) Surface {
	e.created = append(e.created, containerID)
	e.surface = &fakeSurface{live: map[LayerHandle]call{}, center: center, zoom: zoom}
	return e.surface
}

type fakeSurface struct {
	calls  []call
	live   map[LayerHandle]call
	center LatLng
	zoom   int
}

func (s *fakeSurface) add(c call) LayerHandle {
	h := uuid.New()
	s.calls = append(s.calls, c)
	s.live[h] = c
	return h
}

func (s *fakeSurface) AddTileLayer(url, attribution string) LayerHandle {
	return s.add(call{op: "tiles", text: url})
}

func (s *fakeSurface) SetView(center LatLng, zoom int) {
	s.calls = append(s.calls, call{op: "view", at: center})
	s.center, s.zoom = center, zoom
}

func (s *fakeSurface) AddMarker(at LatLng, glyph Glyph, popup string) LayerHandle {
	return s.add(call{op: "marker", at: at, text: popup})
}

func (s *fakeSurface) AddPolyline(coords []LatLng, color string) LayerHandle {
	return s.add(call{op: "polyline", at: coords[0], color: color})
}

func (s *fakeSurface) RemoveLayer(h LayerHandle) {
	s.calls = append(s.calls, call{op: "remove"})
	delete(s.live, h)
}

func (s *fakeSurface) count(op string) int {
	n := 0
	for _, c := range s.live {
		if c.op == op {
			n++
		}
	}
	return n
}

var scenario = geom.LocationList{
	{Name: "Home", Lat: 9.4536911, Lon: 77.8090363},
	{Name: "Bus Stop", Lat: 9.45511705, Lon: 77.8015092},
	{Name: "Church", Lat: 9.4503574, Lon: 77.7990665},
	{Name: "School", Lat: 9.4492444, Lon: 77.7882269},
}

// --- tests ---

func TestRenderScenario(t *testing.T) {
	eng := &fakeEngine{}
	c := New(eng, Options{NamedLabels: true, Palette: []string{"red", "blue", "green"}})
	set := c.Render(scenario)

	var labels []string
	for _, m := range set.Markers {
		labels = append(labels, m.Label)
	}
	if diff := cmp.Diff([]string{"Home", "Bus Stop", "Church", "School"}, labels); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
	var colors []string
	for _, sg := range set.Segments {
		colors = append(colors, sg.Color)
	}
	if diff := cmp.Diff([]string{"red", "blue", "green"}, colors); diff != "" {
		t.Errorf("colors mismatch (-want +got):\n%s", diff)
	}
	if got := eng.surface.count("marker"); got != 4 {
		t.Errorf("markers on surface = %d, want 4", got)
	}
	if got := eng.surface.count("polyline"); got != 3 {
		t.Errorf("polylines on surface = %d, want 3", got)
	}
	if eng.surface.zoom != DefaultZoom {
		t.Errorf("zoom = %d, want %d", eng.surface.zoom, DefaultZoom)
	}
	if want := (LatLng{Lat: 9.4536911, Lon: 77.8090363}); eng.surface.center != want {
		t.Errorf("center = %+v, want %+v", eng.surface.center, want)
	}
	if c.State() != Initialized {
		t.Errorf("state = %s, want initialized", c.State())
	}
}

func TestRenderCounts(t *testing.T) {
	for n := 1; n <= 4; n++ {
		eng := &fakeEngine{}
		c := New(eng, Options{})
		set := c.Render(scenario[:n])
		if len(set.Markers) != n {
			t.Errorf("n=%d: markers = %d", n, len(set.Markers))
		}
		if len(set.Segments) != n-1 {
			t.Errorf("n=%d: segments = %d, want %d", n, len(set.Segments), n-1)
		}
	}
}

func TestRenderEmptyIsNoop(t *testing.T) {
	eng := &fakeEngine{}
	c := New(eng, Options{})
	set := c.Render(nil)
	if !set.Empty() {
		t.Errorf("expected empty layer set, got %+v", set)
	}
	if len(eng.created) != 0 {
		t.Errorf("surface created for empty render")
	}
	if c.State() != Uninitialized {
		t.Errorf("state = %s, want uninitialized", c.State())
	}

	c.Render(scenario)
	before := len(eng.surface.calls)
	c.Render(geom.LocationList{})
	if len(eng.surface.calls) != before {
		t.Errorf("empty render mutated the surface: %v", eng.surface.calls[before:])
	}
	if len(c.Current().Markers) != 4 {
		t.Errorf("current set lost after empty render")
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	eng := &fakeEngine{}
	c := New(eng, Options{NamedLabels: true})
	first := c.Render(scenario)
	second := c.Render(scenario)
	ignore := cmp.Options{
		cmpopts.IgnoreFields(Marker{}, "Handle"),
		cmpopts.IgnoreFields(Segment{}, "Handle"),
	}
	if diff := cmp.Diff(first, second, ignore); diff != "" {
		t.Errorf("second render differs (-first +second):\n%s", diff)
	}
	if len(eng.created) != 1 {
		t.Errorf("surface created %d times, want 1", len(eng.created))
	}
}

func TestRenderDisposesPreviousSet(t *testing.T) {
	eng := &fakeEngine{}
	c := New(eng, Options{})
	first := c.Render(scenario)
	c.Render(scenario[:2])

	for _, m := range first.Markers {
		if _, ok := eng.surface.live[m.Handle]; ok {
			t.Errorf("marker %s from previous render still attached", m.Label)
		}
	}
	for _, sg := range first.Segments {
		if _, ok := eng.surface.live[sg.Handle]; ok {
			t.Errorf("segment %d from previous render still attached", sg.Index)
		}
	}
	if got := eng.surface.count("marker"); got != 2 {
		t.Errorf("markers on surface = %d, want 2", got)
	}
	if got := eng.surface.count("polyline"); got != 1 {
		t.Errorf("polylines on surface = %d, want 1", got)
	}
	if got := eng.surface.count("tiles"); got != 1 {
		t.Errorf("tile layers = %d, want 1", got)
	}
	if want := (LatLng{Lat: 9.4536911, Lon: 77.8090363}); eng.surface.center != want {
		t.Errorf("center = %+v, want %+v", eng.surface.center, want)
	}
}

func TestSegmentColorsArePositional(t *testing.T) {
	palette := []string{"red", "blue"}
	locs := geom.LocationList{
		{Lat: 0, Lon: 0}, {Lat: 50, Lon: 50}, {Lat: -10, Lon: 170}, {Lat: 0, Lon: 0}, {Lat: 1, Lon: 1},
	}
	shifted := make(geom.LocationList, len(locs))
	for i, l := range locs {
		shifted[i] = geom.Location{Lat: l.Lat * -1, Lon: l.Lon + 3}
	}
	for _, in := range []geom.LocationList{locs, shifted} {
		set := New(&fakeEngine{}, Options{Palette: palette}).Render(in)
		for i, sg := range set.Segments {
			if want := palette[i%len(palette)]; sg.Color != want {
				t.Errorf("segment %d color = %s, want %s", i, sg.Color, want)
			}
		}
	}
}

func TestAnonymousLabels(t *testing.T) {
	set := New(&fakeEngine{}, Options{}).Render(scenario[:2])
	if set.Markers[0].Label != "Location 1" || set.Markers[1].Label != "Location 2" {
		t.Errorf("labels = %q, %q", set.Markers[0].Label, set.Markers[1].Label)
	}
}

func TestNamedLabelsPassEmptyName(t *testing.T) {
	set := New(&fakeEngine{}, Options{NamedLabels: true}).Render(geom.LocationList{{Lat: 1, Lon: 2}})
	if set.Markers[0].Label != "" {
		t.Errorf("label = %q, want empty", set.Markers[0].Label)
	}
	if len(set.Segments) != 0 {
		t.Errorf("segments = %d, want 0", len(set.Segments))
	}
}

func TestGlyphIsAttached(t *testing.T) {
	set := New(&fakeEngine{}, Options{Glyph: func() Glyph { return "◆" }}).Render(scenario[:1])
	if set.Markers[0].Glyph != "◆" {
		t.Errorf("glyph = %q", set.Markers[0].Glyph)
	}
}
