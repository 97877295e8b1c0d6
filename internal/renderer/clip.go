package renderer

import "image"

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClipRect clamps the rectangle (x, y, w, h) to a width x height canvas.
// The min corner lands in [0,W-1]x[0,H-1], the max corner in [0,W]x[0,H].
// ok is false when nothing of the rectangle remains and drawing must be skipped.
func ClipRect(x, y, w, h float64, width, height int) (r image.Rectangle, ok bool) {
	xa, ya := int(x), int(y)
	xb, yb := int(x+w), int(y+h)
	// clamping alone would squeeze a box past the far edge into the last row or column
	if xa >= width || ya >= height || xb <= 0 || yb <= 0 {
		return image.Rectangle{}, false
	}

	x1 := Clamp(xa, 0, width-1)
	y1 := Clamp(ya, 0, height-1)
	x2 := Clamp(xb, 0, width)
	y2 := Clamp(yb, 0, height)
	if x2 <= x1 || y2 <= y1 {
		return image.Rectangle{}, false
	}
	return image.Rect(x1, y1, x2, y2), true
}

// ClipCircle returns the clamped bounding box of a circle, or ok=false when
// the box lies entirely off the canvas. The box is a reject gate only.
func ClipCircle(cx, cy, r float64, width, height int) (box image.Rectangle, ok bool) {
	x1 := int(cx - r)
	y1 := int(cy - r)
	x2 := int(cx + r)
	y2 := int(cy + r)
	if x2 < 0 || y2 < 0 || x1 >= width || y1 >= height {
		return image.Rectangle{}, false
	}
	return image.Rect(
		Clamp(x1, 0, width-1),
		Clamp(y1, 0, height-1),
		Clamp(x2, 0, width),
		Clamp(y2, 0, height),
	), true
}
