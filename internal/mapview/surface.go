package mapview

import "github.com/google/uuid"

// Base tile source shown on every surface.
const (
	TileURL     = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	Attribution = "© OpenStreetMap contributors"
)

type LatLng struct {
	Lat float64
	Lon float64
}

// LayerHandle identifies one primitive attached to a surface.
type LayerHandle = uuid.UUID

// Glyph is an opaque visual descriptor for a marker, supplied by the presentation layer.
type Glyph string

// Engine creates map surfaces.
type Engine interface {
	CreateSurface(containerID string, center LatLng, zoom int) Surface
}

// Surface is a live map canvas that layers can be attached to and removed from.
type Surface interface {
	AddTileLayer(url, attribution string) LayerHandle
	SetView(center LatLng, zoom int)
	AddMarker(at LatLng, glyph Glyph, popup string) LayerHandle
	AddPolyline(coords []LatLng, color string) LayerHandle
	RemoveLayer(h LayerHandle)
}
