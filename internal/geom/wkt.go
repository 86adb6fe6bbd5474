package geom

import (
	"errors"
	"strconv"
	"strings"
)

// ParseWKT parses a subset of WKT into unnamed locations, in vertex order.
// Supported: POINT(x y), MULTIPOINT(x y, ...), MULTIPOINT((x y), ...), LINESTRING(x y, ...)
func ParseWKT(wkt string) ([]Location, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	var kind string
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"):
		kind = "multipoint"
	case strings.HasPrefix(up, "POINT"):
		kind = "point"
	case strings.HasPrefix(up, "LINESTRING"):
		kind = "linestring"
	default:
		return nil, errors.New("unsupported wkt type")
	}
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if i < 0 || j <= i {
		return nil, errors.New("wkt " + kind + ": invalid")
	}
	block := strings.NewReplacer("(", " ", ")", " ").Replace(s[i+1 : j])
	var locs []Location
	// split by comma into tuples "x y"
	for _, tup := range strings.Split(block, ",") {
		parts := strings.Fields(tup)
		if len(parts) < 2 {
			continue
		}
		x, err1 := strconv.ParseFloat(parts[0], 64)
		y, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		locs = append(locs, Location{Lat: y, Lon: x})
	}
	if len(locs) == 0 {
		return nil, errors.New("wkt: no coordinates parsed")
	}
	return locs, nil
}
