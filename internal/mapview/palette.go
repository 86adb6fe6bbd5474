package mapview

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultPalette colors segments by position: segment 0 red, 1 blue, 2 green, ...
var DefaultPalette = []string{"red", "blue", "green", "orange", "purple"}

var namedColors = map[string]string{
	"red":    "#E53935",
	"blue":   "#1E88E5",
	"green":  "#43A047",
	"orange": "#FB8C00",
	"purple": "#8E24AA",
	"yellow": "#FDD835",
	"cyan":   "#00ACC1",
	"pink":   "#D81B60",
	"brown":  "#6D4C41",
	"gray":   "#757575",
	"black":  "#212121",
	"white":  "#FAFAFA",
}

// ResolveColor accepts a palette name or a #rrggbb / #rgb hex string.
func ResolveColor(name string) (colorful.Color, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	if !strings.HasPrefix(s, "#") {
		return colorful.Color{}, fmt.Errorf("unknown color %q", name)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("color %q: %w", name, err)
	}
	return c, nil
}

// SegmentColor returns the color of segment i. Assignment wraps around the palette.
func SegmentColor(palette []string, i int) string {
	return palette[i%len(palette)]
}
