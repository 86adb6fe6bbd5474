package geom

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SupportedExt reports whether LoadPath can read files with the given extension.
func SupportedExt(ext string) bool {
	switch strings.ToLower(ext) {
	case ".geojson", ".json", ".csv", ".kml", ".wkt":
		return true
	}
	return false
}

// LoadPath loads locations from any supported format, chosen by extension.
func LoadPath(p string) ([]Location, error) {
	ext := strings.ToLower(filepath.Ext(p))
	switch ext {
	case ".geojson", ".json":
		return LoadGeoJSON(p)
	case ".csv":
		return LoadCSV(p)
	case ".kml":
		return LoadKML(p)
	case ".wkt":
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		return ParseWKT(string(data))
	}
	return nil, fmt.Errorf("unsupported file: %q", ext)
}
