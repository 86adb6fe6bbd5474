package tui

import (
	"math"

	"github.com/google/uuid"

	"geotrack/internal/mapview"
)

const (
	tileSize = 256.0
	// dotPx is how many Web-Mercator pixels one braille dot covers; a terminal
	// cell is roughly 8x16 px and holds 2x4 dots.
	dotPx   = 4.0
	minZoom = 1
	maxZoom = 19
)

type layerKind int

const (
	tileLayer layerKind = iota
	markerLayer
	polylineLayer
)

type layer struct {
	kind        layerKind
	coords      []mapview.LatLng
	color       string
	glyph       mapview.Glyph
	popup       string
	url         string
	attribution string
}

// canvas is a terminal map surface. It keeps its layers in insertion order
// and draws them with a Web-Mercator projection centered on the view center.
type canvas struct {
	id     string
	center mapview.LatLng
	zoom   int

	// pan, in cells
	offsetX int
	offsetY int

	layers map[mapview.LayerHandle]*layer
	order  []mapview.LayerHandle
}

type canvasEngine struct {
	surfaces map[string]*canvas
}

func newCanvasEngine() *canvasEngine {
	return &canvasEngine{surfaces: map[string]*canvas{}}
}

func (e *canvasEngine) CreateSurface(containerID string, center mapview.LatLng, zoom int) mapview.Surface {
	c := &canvas{id: containerID, layers: map[mapview.LayerHandle]*layer{}}
	c.SetView(center, zoom)
	e.surfaces[containerID] = c
	return c
}

// surface returns the canvas for containerID, or nil before the first render.
func (e *canvasEngine) surface(containerID string) *canvas {
	return e.surfaces[containerID]
}

func (c *canvas) add(l *layer) mapview.LayerHandle {
	h := uuid.New()
	c.layers[h] = l
	c.order = append(c.order, h)
	return h
}

func (c *canvas) AddTileLayer(url, attribution string) mapview.LayerHandle {
	return c.add(&layer{kind: tileLayer, url: url, attribution: attribution})
}

func (c *canvas) SetView(center mapview.LatLng, zoom int) {
	c.center = center
	c.zoom = min(maxZoom, max(minZoom, zoom))
	c.offsetX, c.offsetY = 0, 0
}

func (c *canvas) AddMarker(at mapview.LatLng, glyph mapview.Glyph, popup string) mapview.LayerHandle {
	return c.add(&layer{kind: markerLayer, coords: []mapview.LatLng{at}, glyph: glyph, popup: popup})
}

func (c *canvas) AddPolyline(coords []mapview.LatLng, color string) mapview.LayerHandle {
	cp := make([]mapview.LatLng, len(coords))
	copy(cp, coords)
	return c.add(&layer{kind: polylineLayer, coords: cp, color: color})
}

func (c *canvas) RemoveLayer(h mapview.LayerHandle) {
	if _, ok := c.layers[h]; !ok {
		return
	}
	delete(c.layers, h)
	for i, o := range c.order {
		if o == h {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// ofKind returns the attached layers of one kind in insertion order.
func (c *canvas) ofKind(k layerKind) []*layer {
	var out []*layer
	for _, h := range c.order {
		if l := c.layers[h]; l.kind == k {
			out = append(out, l)
		}
	}
	return out
}

func (c *canvas) attribution() string {
	for _, l := range c.ofKind(tileLayer) {
		if l.attribution != "" {
			return l.attribution
		}
	}
	return ""
}

func (c *canvas) zoomBy(d int) {
	c.zoom = min(maxZoom, max(minZoom, c.zoom+d))
}

func (c *canvas) pan(dx, dy int) {
	c.offsetX += dx
	c.offsetY += dy
}

// mercator projects to world pixel coordinates at the given zoom.
func mercator(ll mapview.LatLng, zoom int) (float64, float64) {
	scale := tileSize * math.Exp2(float64(zoom))
	s := math.Sin(ll.Lat * math.Pi / 180)
	s = math.Min(math.Max(s, -0.9999), 0.9999)
	x := (ll.Lon + 180) / 360 * scale
	y := (0.5 - math.Log((1+s)/(1-s))/(4*math.Pi)) * scale
	return x, y
}

func unmercator(x, y float64, zoom int) mapview.LatLng {
	scale := tileSize * math.Exp2(float64(zoom))
	lon := x/scale*360 - 180
	n := math.Pi - 2*math.Pi*y/scale
	lat := 180 / math.Pi * math.Atan(math.Sinh(n))
	return mapview.LatLng{Lat: lat, Lon: lon}
}

// screenXYMicro maps a coordinate into the 2x4-per-cell braille microgrid of a w x h cell view.
func (c *canvas) screenXYMicro(ll mapview.LatLng, w, h int) (int, int) {
	px, py := mercator(ll, c.zoom)
	cx, cy := mercator(c.center, c.zoom)
	mx := int(math.Round((px-cx)/dotPx)) + w + c.offsetX*2
	my := int(math.Round((py-cy)/dotPx)) + h*2 + c.offsetY*4
	return mx, my
}

// screenXY maps a coordinate to a cell.
func (c *canvas) screenXY(ll mapview.LatLng, w, h int) (int, int) {
	mx, my := c.screenXYMicro(ll, w, h)
	return floorDiv(mx, 2), floorDiv(my, 4)
}

// cellToLatLng converts the center of a view cell back to a coordinate.
func (c *canvas) cellToLatLng(x, y, w, h int) mapview.LatLng {
	mx := float64(x*2+1-w-c.offsetX*2) * dotPx
	my := float64(y*4+2-h*2-c.offsetY*4) * dotPx
	cx, cy := mercator(c.center, c.zoom)
	return unmercator(cx+mx, cy+my, c.zoom)
}
