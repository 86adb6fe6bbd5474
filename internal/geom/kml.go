package geom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadKML extracts named points from a KML file (Placemark > name, Point > coordinates).
// KML coordinates are "lon,lat[,alt]"; altitude is ignored.
func LoadKML(path string) ([]Location, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadKML(f)
}

type kmlPoint struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPlacemark struct {
	Name  string    `xml:"name"`
	Point *kmlPoint `xml:"Point"`
}

type kmlDoc struct {
	Placemarks []kmlPlacemark `xml:"Placemark"`
	Document   struct {
		Placemarks []kmlPlacemark `xml:"Placemark"`
	} `xml:"Document"`
}

func ReadKML(r io.Reader) ([]Location, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc kmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("kml: %w", err)
	}
	var locs []Location
	placemarks := append(doc.Placemarks, doc.Document.Placemarks...)
	for _, pm := range placemarks {
		if pm.Point == nil {
			continue
		}
		// coordinates may contain multiple tuples separated by spaces
		for _, tuple := range strings.Fields(pm.Point.Coordinates) {
			vals := strings.Split(tuple, ",")
			if len(vals) < 2 {
				continue
			}
			lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
			lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
			if err1 != nil || err2 != nil {
				continue
			}
			locs = append(locs, Location{Name: strings.TrimSpace(pm.Name), Lat: lat, Lon: lon})
		}
	}
	if len(locs) == 0 {
		return nil, errors.New("kml: no points found")
	}
	return locs, nil
}
