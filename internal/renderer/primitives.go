package renderer

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ivlev/oledframes/internal/canvas"
)

// Per-primitive defaults for properties absent from the evaluated values
const (
	DefaultCircleRadius = 5
	DefaultRectWidth    = 10
	DefaultRectHeight   = 10
	DefaultRectRadius   = 0
	DefaultEllipseRX    = 10
	DefaultEllipseRY    = 5
	DefaultLineX2       = 10
	DefaultLineY2       = 10
	DefaultLineStroke   = 1
	DefaultTextSize     = 10
)

type CircleParams struct {
	X, Y, R float64
}

type RectParams struct {
	X, Y, W, H, R float64
}

type EllipseParams struct {
	X, Y, RX, RY float64
}

type LineParams struct {
	X1, Y1, X2, Y2, Stroke float64
}

type TextParams struct {
	X, Y, Size float64
	Text       string
}

type PixelParams struct {
	X, Y float64
}

func circleParams(v Values) CircleParams {
	return CircleParams{X: v.Get("x", 0), Y: v.Get("y", 0), R: v.Get("r", DefaultCircleRadius)}
}

func rectParams(v Values) RectParams {
	return RectParams{
		X: v.Get("x", 0),
		Y: v.Get("y", 0),
		W: v.Get("w", DefaultRectWidth),
		H: v.Get("h", DefaultRectHeight),
		R: v.Get("r", DefaultRectRadius),
	}
}

func ellipseParams(v Values) EllipseParams {
	return EllipseParams{X: v.Get("x", 0), Y: v.Get("y", 0), RX: v.Get("rx", DefaultEllipseRX), RY: v.Get("ry", DefaultEllipseRY)}
}

func lineParams(v Values) LineParams {
	return LineParams{
		X1:     v.Get("x1", 0),
		Y1:     v.Get("y1", 0),
		X2:     v.Get("x2", DefaultLineX2),
		Y2:     v.Get("y2", DefaultLineY2),
		Stroke: v.Get("stroke", DefaultLineStroke),
	}
}

func textParams(v Values, text string) TextParams {
	return TextParams{X: v.Get("x", 0), Y: v.Get("y", 0), Size: v.Get("size", DefaultTextSize), Text: text}
}

func pixelParams(v Values) PixelParams {
	return PixelParams{X: v.Get("x", 0), Y: v.Get("y", 0)}
}

// Static carries non-interpolated object properties
type Static struct {
	Text string
}

// Renderer draws primitives onto monochrome canvases.
// A Renderer is not safe for concurrent use; create one per goroutine.
type Renderer struct {
	faces faceCache
}

func New(fonts *FontSource) *Renderer {
	if fonts == nil {
		fonts = NewFontSource("")
	}
	return &Renderer{faces: faceCache{src: fonts}}
}

// Draw renders one primitive. Geometry outside the canvas is clipped or
// skipped; only an unknown kind is an error.
func (r *Renderer) Draw(c *canvas.Bitmap, kind Kind, v Values, static Static, fill uint8) error {
	switch kind {
	case Circle:
		r.circle(c, circleParams(v), fill)
	case Rect:
		r.rect(c, rectParams(v), fill)
	case Ellipse:
		r.ellipse(c, ellipseParams(v), fill)
	case Line:
		r.line(c, lineParams(v), fill)
	case Text:
		r.text(c, textParams(v, static.Text), fill)
	case Pixel:
		r.pixel(c, pixelParams(v), fill)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedPrimitive, kind)
	}
	return nil
}

func (r *Renderer) circle(c *canvas.Bitmap, p CircleParams, fill uint8) {
	if _, ok := ClipCircle(p.X, p.Y, p.R, c.Width, c.Height); !ok {
		return
	}
	fillEllipse(c, int(p.X-p.R), int(p.Y-p.R), int(p.X+p.R), int(p.Y+p.R), fill)
}

func (r *Renderer) rect(c *canvas.Bitmap, p RectParams, fill uint8) {
	if _, ok := ClipRect(p.X, p.Y, p.W, p.H, c.Width, c.Height); !ok {
		return
	}
	x0, y0 := int(p.X), int(p.Y)
	x1, y1 := int(p.X+p.W), int(p.Y+p.H)
	if p.R > 0 {
		fillRoundedRect(c, x0, y0, x1, y1, int(p.R), fill)
		return
	}
	fillRect(c, x0, y0, x1, y1, fill)
}

func (r *Renderer) ellipse(c *canvas.Bitmap, p EllipseParams, fill uint8) {
	fillEllipse(c, int(p.X-p.RX), int(p.Y-p.RY), int(p.X+p.RX), int(p.Y+p.RY), fill)
}

func (r *Renderer) line(c *canvas.Bitmap, p LineParams, fill uint8) {
	x1 := Clamp(int(p.X1), 0, c.Width-1)
	y1 := Clamp(int(p.Y1), 0, c.Height-1)
	x2 := Clamp(int(p.X2), 0, c.Width-1)
	y2 := Clamp(int(p.Y2), 0, c.Height-1)
	drawLine(c, x1, y1, x2, y2, int(p.Stroke), fill)
}

func (r *Renderer) text(c *canvas.Bitmap, p TextParams, fill uint8) {
	if p.Text == "" {
		return
	}
	x := Clamp(int(p.X), 0, c.Width-1)
	y := Clamp(int(p.Y), 0, c.Height-1)
	face := r.faces.get(int(p.Size))

	// (x, y) is the top-left corner of the text box; the drawer wants the baseline
	ascent := face.Metrics().Ascent.Ceil()
	d := &font.Drawer{
		Dst:  c,
		Src:  image.NewUniform(fillColor(fill)),
		Face: face,
		Dot:  fixed.P(x, y+ascent),
	}
	d.DrawString(p.Text)
}

func (r *Renderer) pixel(c *canvas.Bitmap, p PixelParams, fill uint8) {
	x, y := int(p.X), int(p.Y)
	if c.In(x, y) {
		c.SetBit(x, y, fill)
	}
}

func fillColor(fill uint8) color.Color {
	if fill == canvas.Background {
		return color.Black
	}
	return color.White
}
