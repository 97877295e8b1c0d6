// Package canvas provides the 1-bit frame buffer the renderer draws into.
//
// A Bitmap stores one byte per pixel while rendering (0 = background,
// 1 = foreground) and packs to one bit per pixel for firmware export.
// It implements draw.Image so x/image font drawers and the standard
// image encoders can operate on it directly.
package canvas

import (
	"image"
	"image/color"
)

const (
	Background uint8 = 0
	Foreground uint8 = 1
)

// Bitmap is a monochrome canvas of fixed size
type Bitmap struct {
	Width  int
	Height int
	Pix    []uint8
}

// New allocates an all-background canvas
func New(width, height int) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Bitmap{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// In reports whether (x, y) lies on the canvas
func (b *Bitmap) In(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// SetBit writes v at (x, y). Off-canvas writes are ignored.
func (b *Bitmap) SetBit(x, y int, v uint8) {
	if !b.In(x, y) {
		return
	}
	if v != Background {
		v = Foreground
	}
	b.Pix[y*b.Width+x] = v
}

// Bit returns the pixel at (x, y), or Background off-canvas
func (b *Bitmap) Bit(x, y int) uint8 {
	if !b.In(x, y) {
		return Background
	}
	return b.Pix[y*b.Width+x]
}

// Invert swaps foreground and background across the whole canvas
func (b *Bitmap) Invert() {
	for i, v := range b.Pix {
		b.Pix[i] = v ^ 1
	}
}

// Count returns the number of foreground pixels
func (b *Bitmap) Count() int {
	n := 0
	for _, v := range b.Pix {
		n += int(v)
	}
	return n
}

// Clone returns an independent copy
func (b *Bitmap) Clone() *Bitmap {
	c := &Bitmap{Width: b.Width, Height: b.Height, Pix: make([]uint8, len(b.Pix))}
	copy(c.Pix, b.Pix)
	return c
}

func (b *Bitmap) ColorModel() color.Model {
	return color.GrayModel
}

func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

func (b *Bitmap) At(x, y int) color.Color {
	if b.Bit(x, y) == Foreground {
		return color.White
	}
	return color.Black
}

// Set thresholds c at mid-gray so anti-aliased glyph edges snap to 1 bit
func (b *Bitmap) Set(x, y int, c color.Color) {
	g := color.GrayModel.Convert(c).(color.Gray)
	if g.Y >= 0x80 {
		b.SetBit(x, y, Foreground)
	} else {
		b.SetBit(x, y, Background)
	}
}

// RowStride is the number of packed bytes per row
func (b *Bitmap) RowStride() int {
	return (b.Width + 7) / 8
}

// Pack returns the canvas as row-major bytes, most significant bit first,
// each row padded to a whole byte.
func (b *Bitmap) Pack() []byte {
	stride := b.RowStride()
	out := make([]byte, stride*b.Height)
	for y := 0; y < b.Height; y++ {
		row := b.Pix[y*b.Width : (y+1)*b.Width]
		for x, v := range row {
			if v != Background {
				out[y*stride+x/8] |= 0x80 >> uint(x%8)
			}
		}
	}
	return out
}

// Paletted converts the canvas to a two-colour paletted image, which the
// PNG encoder writes at 1-bit depth and the GIF encoder accepts as-is.
func (b *Bitmap) Paletted() *image.Paletted {
	img := image.NewPaletted(b.Bounds(), color.Palette{color.Black, color.White})
	copy(img.Pix, b.Pix)
	return img
}
