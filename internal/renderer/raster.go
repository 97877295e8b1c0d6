package renderer

import (
	"github.com/ivlev/oledframes/internal/canvas"
)

// Rasterizers below take inclusive integer boxes and check every pixel
// against the canvas, so arbitrarily large or negative geometry is safe.

func span(lo, hi, size int) (int, int) {
	if lo < 0 {
		lo = 0
	}
	if hi > size-1 {
		hi = size - 1
	}
	return lo, hi
}

func order(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

// fillRect fills [x0,x1]x[y0,y1]
func fillRect(c *canvas.Bitmap, x0, y0, x1, y1 int, fill uint8) {
	x0, x1 = order(x0, x1)
	y0, y1 = order(y0, y1)
	xa, xb := span(x0, x1, c.Width)
	ya, yb := span(y0, y1, c.Height)
	for y := ya; y <= yb; y++ {
		for x := xa; x <= xb; x++ {
			c.SetBit(x, y, fill)
		}
	}
}

// fillEllipse fills the ellipse inscribed in [x0,x1]x[y0,y1].
// A box one pixel wide or tall degenerates to a line or a dot.
func fillEllipse(c *canvas.Bitmap, x0, y0, x1, y1 int, fill uint8) {
	x0, x1 = order(x0, x1)
	y0, y1 = order(y0, y1)

	cx := float64(x0+x1) / 2
	cy := float64(y0+y1) / 2
	a := float64(x1-x0)/2 + 0.5
	b := float64(y1-y0)/2 + 0.5

	xa, xb := span(x0, x1, c.Width)
	ya, yb := span(y0, y1, c.Height)
	for y := ya; y <= yb; y++ {
		dy := (float64(y) - cy) / b
		for x := xa; x <= xb; x++ {
			dx := (float64(x) - cx) / a
			if dx*dx+dy*dy <= 1 {
				c.SetBit(x, y, fill)
			}
		}
	}
}

// fillRoundedRect fills [x0,x1]x[y0,y1] with quarter-circle corners of radius r
func fillRoundedRect(c *canvas.Bitmap, x0, y0, x1, y1, r int, fill uint8) {
	x0, x1 = order(x0, x1)
	y0, y1 = order(y0, y1)
	if limit := min(x1-x0, y1-y0) / 2; r > limit {
		r = limit
	}
	if r <= 0 {
		fillRect(c, x0, y0, x1, y1, fill)
		return
	}

	left, right := x0+r, x1-r
	top, bottom := y0+r, y1-r
	rr := r * r

	xa, xb := span(x0, x1, c.Width)
	ya, yb := span(y0, y1, c.Height)
	for y := ya; y <= yb; y++ {
		for x := xa; x <= xb; x++ {
			ccx, ccy := x, y
			switch {
			case x < left:
				ccx = left
			case x > right:
				ccx = right
			}
			switch {
			case y < top:
				ccy = top
			case y > bottom:
				ccy = bottom
			}
			dx, dy := x-ccx, y-ccy
			if dx*dx+dy*dy <= rr {
				c.SetBit(x, y, fill)
			}
		}
	}
}

// drawLine draws a Bresenham line, stamping a width x width square per step
func drawLine(c *canvas.Bitmap, x0, y0, x1, y1, width int, fill uint8) {
	if width < 1 {
		width = 1
	}
	lo := -(width - 1) / 2
	hi := width / 2

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
		if width == 1 {
			c.SetBit(x0, y0, fill)
		} else {
			fillRect(c, x0+lo, y0+lo, x0+hi, y0+hi, fill)
		}
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

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
