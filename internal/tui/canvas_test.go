package tui

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"geotrack/internal/geom"
	"geotrack/internal/mapview"
)

var home = mapview.LatLng{Lat: 9.4536911, Lon: 77.8090363}

func TestCanvasProjection(t *testing.T) {
	c := newCanvasEngine().CreateSurface("map", home, 13).(*canvas)
	w, h := 80, 24
	x, y := c.screenXY(home, w, h)
	if x != w/2 || y != h/2 {
		t.Fatalf("center at cell (%d,%d), want (%d,%d)", x, y, w/2, h/2)
	}
	// east is right, north is up
	ex, _ := c.screenXY(mapview.LatLng{Lat: home.Lat, Lon: home.Lon + 0.01}, w, h)
	_, ny := c.screenXY(mapview.LatLng{Lat: home.Lat + 0.01, Lon: home.Lon}, w, h)
	if ex <= x || ny >= y {
		t.Errorf("east cell x=%d, north cell y=%d relative to (%d,%d)", ex, ny, x, y)
	}

	ll := c.cellToLatLng(x, y, w, h)
	if math.Abs(ll.Lat-home.Lat) > 5e-3 || math.Abs(ll.Lon-home.Lon) > 5e-3 {
		t.Errorf("cellToLatLng = %+v, want near %+v", ll, home)
	}

	c.pan(2, 1)
	px, py := c.screenXY(home, w, h)
	if px != x+2 || py != y+1 {
		t.Errorf("after pan center at (%d,%d), want (%d,%d)", px, py, x+2, y+1)
	}
	c.SetView(home, 13)
	if c.offsetX != 0 || c.offsetY != 0 {
		t.Errorf("SetView did not reset pan")
	}
}

func TestMercatorRoundTrip(t *testing.T) {
	for _, ll := range []mapview.LatLng{home, {Lat: -33.86, Lon: 151.2}, {Lat: 0, Lon: 0}, {Lat: 60, Lon: -150}} {
		x, y := mercator(ll, 13)
		got := unmercator(x, y, 13)
		if math.Abs(got.Lat-ll.Lat) > 1e-9 || math.Abs(got.Lon-ll.Lon) > 1e-9 {
			t.Errorf("round trip %+v -> %+v", ll, got)
		}
	}
}

func TestCanvasZoomClamp(t *testing.T) {
	c := newCanvasEngine().CreateSurface("map", home, 25).(*canvas)
	if c.zoom != maxZoom {
		t.Fatalf("zoom = %d, want clamped to %d", c.zoom, maxZoom)
	}
	c.zoomBy(-100)
	if c.zoom != minZoom {
		t.Errorf("zoom = %d, want %d", c.zoom, minZoom)
	}
}

func TestCanvasLayersFollowController(t *testing.T) {
	eng := newCanvasEngine()
	ctrl := mapview.New(eng, mapview.Options{ContainerID: "map", NamedLabels: true, Glyph: markerGlyph})
	locs := geom.LocationList{
		{Name: "Home", Lat: 9.4536911, Lon: 77.8090363},
		{Name: "Bus Stop", Lat: 9.45511705, Lon: 77.8015092},
		{Name: "Church", Lat: 9.4503574, Lon: 77.7990665},
		{Name: "School", Lat: 9.4492444, Lon: 77.7882269},
	}
	ctrl.Render(locs)
	ctrl.Render(locs)
	ctrl.Render(locs[:2])

	c := eng.surface("map")
	if c == nil {
		t.Fatal("surface not created")
	}
	if got := len(c.ofKind(tileLayer)); got != 1 {
		t.Errorf("tile layers = %d, want 1", got)
	}
	if got := len(c.ofKind(markerLayer)); got != 2 {
		t.Errorf("markers = %d, want 2", got)
	}
	if got := len(c.ofKind(polylineLayer)); got != 1 {
		t.Errorf("polylines = %d, want 1", got)
	}
	if len(c.order) != len(c.layers) {
		t.Errorf("order has %d handles for %d layers", len(c.order), len(c.layers))
	}
	if c.attribution() != mapview.Attribution {
		t.Errorf("attribution = %q", c.attribution())
	}
}

func TestCanvasRender(t *testing.T) {
	eng := newCanvasEngine()
	c := eng.CreateSurface("map", home, 13).(*canvas)
	c.AddPolyline([]mapview.LatLng{home, {Lat: 9.45511705, Lon: 77.8015092}}, "red")
	c.AddMarker(home, "◉", "Home")
	c.AddMarker(mapview.LatLng{Lat: 80, Lon: -170}, "◉", "far away")

	w, h := 60, 20
	out := c.render(w, h, 0)
	lines := strings.Split(out, "\n")
	if len(lines) != h {
		t.Fatalf("rendered %d lines, want %d", len(lines), h)
	}
	for i, l := range lines {
		if lipgloss.Width(l) != w {
			t.Errorf("line %d width = %d, want %d", i, lipgloss.Width(l), w)
		}
	}
	if strings.Count(out, "◉") != 1 {
		t.Errorf("expected exactly one visible marker:\n%s", out)
	}
	hasBraille := false
	for _, r := range out {
		if r > 0x2800 && r <= 0x28FF {
			hasBraille = true
			break
		}
	}
	if !hasBraille {
		t.Errorf("expected a braille polyline:\n%s", out)
	}

	if i := c.nearestMarker(w/2, h/2, w, h, 2); i != 0 {
		t.Errorf("nearestMarker = %d, want 0", i)
	}
	if i := c.nearestMarker(0, 0, w, h, 2); i != -1 {
		t.Errorf("nearestMarker far from markers = %d, want -1", i)
	}
}

func TestClipLine(t *testing.T) {
	x0, y0, x1, y1, ok := clipLine(-1000, 5, 1000, 5, 0, 0, 100, 100)
	if !ok || x0 != 0 || x1 != 100 || y0 != 5 || y1 != 5 {
		t.Errorf("clip = (%d,%d)-(%d,%d) ok=%v", x0, y0, x1, y1, ok)
	}
	if _, _, _, _, ok := clipLine(-10, -10, -5, -5, 0, 0, 100, 100); ok {
		t.Error("segment outside the box should be rejected")
	}
}

func TestFloorDiv(t *testing.T) {
	cases := [][3]int{{5, 2, 2}, {-1, 2, -1}, {-4, 4, -1}, {-5, 4, -2}, {0, 4, 0}}
	for _, c := range cases {
		if got := floorDiv(c[0], c[1]); got != c[2] {
			t.Errorf("floorDiv(%d,%d) = %d, want %d", c[0], c[1], got, c[2])
		}
	}
}
