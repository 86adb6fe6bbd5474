package tui

type brailleBuf struct {
	w, h int        // in cells
	m    [][]uint8  // per-cell 8-bit mask
	c    [][]string // per-cell color name, last writer wins
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	c := make([][]string, h)
	for i := range m {
		m[i] = make([]uint8, w)
		c[i] = make([]string, w)
	}
	return &brailleBuf{w: w, h: h, m: m, c: c}
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, color string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	b.m[cy][cx] |= bit
	b.c[cy][cx] = color
}

// drawLineMicro draws a line on the microgrid using Bresenham.
// Endpoints far outside the buffer are clipped first so long off-screen
// segments do not walk millions of pixels.
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int, color string) {
	var ok bool
	x0, y0, x1, y1, ok = clipLine(x0, y0, x1, y1, -1, -1, b.w*2, b.h*4)
	if !ok {
		return
	}
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0, color)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *brailleBuf) cell(x, y int) (rune, string) {
	mask := b.m[y][x]
	if mask == 0 {
		return ' ', ""
	}
	return rune(0x2800 + int(mask)), b.c[y][x]
}

// clipLine clips a segment to the rectangle [minX,maxX]x[minY,maxY] (Liang-Barsky).
func clipLine(x0, y0, x1, y1, minX, minY, maxX, maxY int) (int, int, int, int, bool) {
	fx0, fy0 := float64(x0), float64(y0)
	dx, dy := float64(x1-x0), float64(y1-y0)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, fx0 - float64(minX)},
		{dx, float64(maxX) - fx0},
		{-dy, fy0 - float64(minY)},
		{dy, float64(maxY) - fy0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return int(fx0 + t0*dx), int(fy0 + t0*dy), int(fx0 + t1*dx), int(fy0 + t1*dy), true
}
