// Package tui implements the interactive terminal preview for map files.
//
// Items are projected onto a braille canvas: each terminal cell carries a
// 2x4 micro-pixel grid encoded as a braille rune, which keeps lines crisp
// at terminal resolution.
package tui

// brailleBase is the Unicode braille pattern block start.
const brailleBase = 0x2800

// bit masks for the 2x4 braille dot layout, indexed [column][row].
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// canvas is a braille drawing surface of w x h terminal cells, giving a
// 2w x 4h micro-pixel grid.
type canvas struct {
	w, h  int
	cells [][]uint8
}

func newCanvas(w, h int) *canvas {
	cells := make([][]uint8, h)
	for i := range cells {
		cells[i] = make([]uint8, w)
	}
	return &canvas{w: w, h: h, cells: cells}
}

// set marks a micro-pixel. Out-of-range coordinates are ignored.
func (c *canvas) set(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= c.w || cy >= c.h {
		return
	}
	c.cells[cy][cx] |= brailleBits[mx%2][my%4]
}

// line draws a straight segment on the micro grid using Bresenham.
func (c *canvas) line(x0, y0, x1, y1 int) {
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
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
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

// rune returns the braille rune for a cell, or a space for an empty cell.
func (c *canvas) rune(cx, cy int) rune {
	mask := c.cells[cy][cx]
	if mask == 0 {
		return ' '
	}
	return rune(brailleBase + int(mask))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
