package tui

import (
	"math"

	"shapelab/internal/geom"
	"shapelab/internal/shape"
)

// ellipseSegments is how many line segments approximate an ellipse outline.
const ellipseSegments = 64

// Canvas rasterizes shape paths onto a braille micro-grid (2x4 pixels per
// terminal cell). Two layers are kept: a base layer and a "hot" layer for
// colliding bodies, so the renderer can style them differently.
type Canvas struct {
	w, h int // in cells
	base [][]uint8
	hot  [][]uint8

	// World window mapped onto the micro-grid.
	world  geom.Rect
	scaleX float64
	scaleY float64
}

// NewCanvas creates a canvas of w x h terminal cells showing the given world
// window. X and Y are scaled independently: terminal cells are not square,
// and the sandbox favors filling the viewport over preserving aspect.
func NewCanvas(w, h int, world geom.Rect) *Canvas {
	c := &Canvas{w: w, h: h, world: world}
	c.base = makeGrid(w, h)
	c.hot = makeGrid(w, h)
	if world.Width > 0 {
		c.scaleX = float64(2*w-1) / world.Width
	}
	if world.Height > 0 {
		c.scaleY = float64(4*h-1) / world.Height
	}
	return c
}

func makeGrid(w, h int) [][]uint8 {
	g := make([][]uint8, h)
	for i := range g {
		g[i] = make([]uint8, w)
	}
	return g
}

// Clear resets both layers.
func (c *Canvas) Clear() {
	for y := range c.base {
		for x := range c.base[y] {
			c.base[y][x] = 0
			c.hot[y][x] = 0
		}
	}
}

// DrawPath rasterizes a shape path. Hot paths land on the hot layer.
func (c *Canvas) DrawPath(p shape.Path, isHot bool) {
	switch p.Kind {
	case shape.PathEllipse:
		c.drawEllipse(p.Bounds, isHot)
	case shape.PathPolyline:
		c.drawPolyline(p.Points, isHot)
	}
	// PathEmpty draws nothing.
}

func (c *Canvas) drawEllipse(bounds geom.Rect, isHot bool) {
	cx := bounds.X + bounds.Width/2
	cy := bounds.Y + bounds.Height/2
	rx := bounds.Width / 2
	ry := bounds.Height / 2

	prev := geom.Pt(cx+rx, cy)
	for i := 1; i <= ellipseSegments; i++ {
		theta := 2 * math.Pi * float64(i) / ellipseSegments
		next := geom.Pt(cx+rx*math.Cos(theta), cy+ry*math.Sin(theta))
		c.drawSegment(prev, next, isHot)
		prev = next
	}
}

func (c *Canvas) drawPolyline(pts []geom.Point, isHot bool) {
	if len(pts) < 2 {
		return
	}
	for i := 0; i < len(pts)-1; i++ {
		c.drawSegment(pts[i], pts[i+1], isHot)
	}
	// Closed polyline: last vertex connects back to the first.
	c.drawSegment(pts[len(pts)-1], pts[0], isHot)
}

func (c *Canvas) drawSegment(a, b geom.Point, isHot bool) {
	x0, y0 := c.toMicro(a)
	x1, y1 := c.toMicro(b)
	c.drawLineMicro(x0, y0, x1, y1, isHot)
}

// toMicro maps a world point to micro-pixel coordinates.
func (c *Canvas) toMicro(p geom.Point) (int, int) {
	mx := int(math.Round((p.X - c.world.X) * c.scaleX))
	my := int(math.Round((p.Y - c.world.Y) * c.scaleY))
	return mx, my
}

// drawLineMicro draws a line on the micro-grid using Bresenham.
func (c *Canvas) drawLineMicro(x0, y0, x1, y1 int, isHot bool) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.setPixel(x0, y0, isHot)
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

// setPixel sets a micro-pixel (2x4 per cell). Out-of-window pixels are
// silently clipped.
func (c *Canvas) setPixel(mx, my int, isHot bool) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy < 0 || cy >= c.h || cx < 0 || cx >= c.w {
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
	if isHot {
		c.hot[cy][cx] |= bit
	} else {
		c.base[cy][cx] |= bit
	}
}

// Cell returns the braille rune for a cell and whether any hot pixel landed
// there. Empty cells yield a space.
func (c *Canvas) Cell(x, y int) (rune, bool) {
	if y < 0 || y >= c.h || x < 0 || x >= c.w {
		return ' ', false
	}
	mask := c.base[y][x] | c.hot[y][x]
	if mask == 0 {
		return ' ', false
	}
	return rune(0x2800 + int(mask)), c.hot[y][x] != 0
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.w }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.h }

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
