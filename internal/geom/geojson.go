package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// LoadGeoJSON reads point-like geometries from a GeoJSON file.
// Points take their name from the feature's "name" property; MultiPoint and
// LineString vertices are added unnamed, in order. Polygons are skipped.
func LoadGeoJSON(path string) ([]Location, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadGeoJSON(f)
}

func ReadGeoJSON(r io.Reader) ([]Location, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}
	var locs []Location
	parsePoint := func(v any) (Location, bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			lon, lok := a[0].(float64)
			lat, aok := a[1].(float64)
			if lok && aok {
				return Location{Lat: lat, Lon: lon}, true
			}
		}
		return Location{}, false
	}
	parseArrayPoints := func(v any) []Location {
		arr, _ := v.([]any)
		var pts []Location
		for _, el := range arr {
			if pt, ok := parsePoint(el); ok {
				pts = append(pts, pt)
			}
		}
		return pts
	}
	walkGeom := func(g map[string]any, name string) {
		gt, _ := g["type"].(string)
		switch gt {
		case "Point":
			if pt, ok := parsePoint(g["coordinates"]); ok {
				pt.Name = name
				locs = append(locs, pt)
			}
		case "MultiPoint", "LineString":
			locs = append(locs, parseArrayPoints(g["coordinates"])...)
		}
	}
	featureName := func(fm map[string]any) string {
		props, _ := fm["properties"].(map[string]any)
		name, _ := props["name"].(string)
		return name
	}
	t, _ := raw["type"].(string)
	switch t {
	case "Feature":
		if g, ok := raw["geometry"].(map[string]any); ok {
			walkGeom(g, featureName(raw))
		}
	case "FeatureCollection":
		fs, _ := raw["features"].([]any)
		for _, f := range fs {
			if fm, ok := f.(map[string]any); ok {
				if g, ok := fm["geometry"].(map[string]any); ok {
					walkGeom(g, featureName(fm))
				}
			}
		}
	default:
		if len(raw) > 0 {
			walkGeom(raw, "")
		}
	}
	if len(locs) == 0 {
		return nil, errors.New("geojson: no points found")
	}
	return locs, nil
}
