package graphic

import (
	"math"

	"github.com/noriah/catscope/display"
)

const (
	// BrailleBase is the empty braille pattern.
	BrailleBase rune = '\u2800'

	// DotRune is the glyph used by the dot marker.
	DotRune rune = '\u2022'
)

// brailleBits maps a dot inside a 2x4 braille cell to its pattern bit.
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type cell struct {
	bits  uint8
	dot   bool
	color display.Color
}

// Canvas is a grid of terminal cells addressed in marker dots. A braille
// cell holds 2x4 dots, a dot cell holds one.
type Canvas struct {
	cols, rows int
	cells      []cell
}

// NewCanvas returns an empty canvas of cols by rows cells.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize changes the size and clears the canvas.
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}

	c.cols, c.rows = cols, rows

	if n := cols * rows; cap(c.cells) >= n {
		c.cells = c.cells[:n]
	} else {
		c.cells = make([]cell, n)
	}

	c.Clear()
}

// Clear empties every cell.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = cell{}
	}
}

// Size returns the canvas size in dots of marker.
func (c *Canvas) Size(marker display.Marker) (int, int) {
	if marker == display.MarkerBraille {
		return c.cols * 2, c.rows * 4
	}
	return c.cols, c.rows
}

// Point sets the dot at x, y. Dots outside the canvas are ignored.
func (c *Canvas) Point(marker display.Marker, x, y int, color display.Color) {
	w, h := c.Size(marker)
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}

	if marker != display.MarkerBraille {
		c.cells[y*c.cols+x] = cell{dot: true, color: color}
		return
	}

	ce := &c.cells[(y/4)*c.cols+x/2]
	ce.dot = false
	ce.bits |= brailleBits[y%4][x%2]
	ce.color = color
}

// Line draws a line between two dots with Bresenham's algorithm.
func (c *Canvas) Line(marker display.Marker, x0, y0, x1, y1 int, color display.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)

	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	e := dx + dy

	for {
		c.Point(marker, x0, y0, color)

		if x0 == x1 && y0 == y1 {
			return
		}

		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Cell returns the glyph and color of a cell. The last value is false for
// empty cells.
func (c *Canvas) Cell(col, row int) (rune, display.Color, bool) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return 0, display.ColorDefault, false
	}

	ce := c.cells[row*c.cols+col]

	switch {
	case ce.dot:
		return DotRune, ce.color, true
	case ce.bits != 0:
		return BrailleBase + rune(ce.bits), ce.color, true
	}

	return 0, display.ColorDefault, false
}

// Plot draws a dataset inside the given axis bounds. Scatter sets plot their
// points, line sets join consecutive points. Anything outside the bounds is
// clipped.
func (c *Canvas) Plot(set display.Dataset, xb, yb [2]float64) {
	w, h := c.Size(set.Marker)
	if w < 1 || h < 1 || !(xb[1] > xb[0]) || !(yb[1] > yb[0]) {
		return
	}

	maxX, maxY := float64(w-1), float64(h-1)

	project := func(p display.Point) (float64, float64) {
		x := (p.X - xb[0]) / (xb[1] - xb[0]) * maxX
		y := maxY - (p.Y-yb[0])/(yb[1]-yb[0])*maxY
		return x, y
	}

	valid := func(p display.Point) bool {
		return !math.IsNaN(p.X) && !math.IsNaN(p.Y) &&
			!math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
	}

	if set.Graph == display.GraphScatter || len(set.Points) == 1 {
		for _, p := range set.Points {
			if !valid(p) {
				continue
			}

			x, y := project(p)
			if x < -0.5 || y < -0.5 || x > maxX+0.5 || y > maxY+0.5 {
				continue
			}

			c.Point(set.Marker, round(x), round(y), set.Color)
		}
		return
	}

	for i := 1; i < len(set.Points); i++ {
		a, b := set.Points[i-1], set.Points[i]
		if !valid(a) || !valid(b) {
			continue
		}

		x0, y0 := project(a)
		x1, y1 := project(b)

		x0, y0, x1, y1, ok := clipLine(x0, y0, x1, y1, maxX, maxY)
		if !ok {
			continue
		}

		c.Line(set.Marker, round(x0), round(y0), round(x1), round(y1), set.Color)
	}
}

// clipLine clips a segment to [0, maxX] x [0, maxY] (Liang-Barsky).
func clipLine(x0, y0, x1, y1, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := x1-x0, y1-y0

	edges := [4][2]float64{
		{-dx, x0},
		{dx, maxX - x0},
		{-dy, y0},
		{dy, maxY - y0},
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

	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func round(v float64) int {
	return int(math.Round(v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
