package geom

import "strconv"

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Location is one committed, renderable point. Coordinates are not range checked.
type Location struct {
	Name string
	Lat  float64
	Lon  float64
}

// LocationList is ordered; consecutive entries are connected by a segment.
type LocationList []Location

// Coords returns the list as [lon, lat] pairs.
func (l LocationList) Coords() [][2]float64 {
	out := make([][2]float64, len(l))
	for i, loc := range l {
		out[i] = [2]float64{loc.Lon, loc.Lat}
	}
	return out
}

// Bounds returns the bbox of the list; ok is false for an empty list.
func (l LocationList) Bounds() (bbox BBox, ok bool) {
	for i, loc := range l {
		if i == 0 {
			bbox = BBox{MinX: loc.Lon, MinY: loc.Lat, MaxX: loc.Lon, MaxY: loc.Lat}
			continue
		}
		bbox.extend(loc.Lon, loc.Lat)
	}
	return bbox, len(l) > 0
}

func (b *BBox) extend(lon, lat float64) {
	if lon < b.MinX {
		b.MinX = lon
	}
	if lat < b.MinY {
		b.MinY = lat
	}
	if lon > b.MaxX {
		b.MaxX = lon
	}
	if lat > b.MaxY {
		b.MaxY = lat
	}
}

// FormatCoord renders a coordinate with the shortest exact representation.
func FormatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
