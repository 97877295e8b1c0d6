package canvas

import (
	"bytes"
	"image/color"
	"testing"
)

func TestNewIsBackground(t *testing.T) {
	b := New(16, 8)
	if b.Count() != 0 {
		t.Errorf("Expected empty canvas, got %d lit pixels", b.Count())
	}
	if len(b.Pix) != 128 {
		t.Errorf("Expected 128 pixels, got %d", len(b.Pix))
	}
}

func TestSetBitIgnoresOffCanvas(t *testing.T) {
	b := New(4, 4)
	b.SetBit(-1, 0, Foreground)
	b.SetBit(0, -1, Foreground)
	b.SetBit(4, 0, Foreground)
	b.SetBit(0, 4, Foreground)
	if b.Count() != 0 {
		t.Errorf("Off-canvas writes leaked: %d lit pixels", b.Count())
	}

	b.SetBit(3, 3, 7)
	if b.Bit(3, 3) != Foreground {
		t.Errorf("Non-zero fill should normalize to foreground, got %d", b.Bit(3, 3))
	}
}

func TestInvert(t *testing.T) {
	b := New(3, 2)
	b.SetBit(1, 1, Foreground)
	b.Invert()
	if b.Count() != 5 {
		t.Errorf("Expected 5 lit pixels after invert, got %d", b.Count())
	}
	if b.Bit(1, 1) != Background {
		t.Error("Lit pixel should be background after invert")
	}
}

func TestSetThresholds(t *testing.T) {
	b := New(2, 1)
	b.Set(0, 0, color.Gray{Y: 0x90})
	b.Set(1, 0, color.Gray{Y: 0x70})
	if b.Bit(0, 0) != Foreground || b.Bit(1, 0) != Background {
		t.Errorf("Unexpected threshold result: %v", b.Pix)
	}
	if b.At(0, 0) != color.White {
		t.Error("Foreground should read back as white")
	}
}

func TestPack(t *testing.T) {
	b := New(10, 2)
	b.SetBit(0, 0, Foreground)
	b.SetBit(9, 0, Foreground)
	b.SetBit(7, 1, Foreground)
	b.SetBit(8, 1, Foreground)

	expected := []byte{0x80, 0x40, 0x01, 0x80}
	got := b.Pack()
	if !bytes.Equal(got, expected) {
		t.Errorf("Expected %x, got %x", expected, got)
	}
	if b.RowStride() != 2 {
		t.Errorf("Expected stride 2, got %d", b.RowStride())
	}
}

func TestPackFullOLED(t *testing.T) {
	b := New(128, 64)
	if got := len(b.Pack()); got != 1024 {
		t.Errorf("Expected 1024 bytes for 128x64, got %d", got)
	}
}

func TestClone(t *testing.T) {
	b := New(2, 2)
	c := b.Clone()
	c.SetBit(0, 0, Foreground)
	if b.Count() != 0 {
		t.Error("Clone shares pixels with original")
	}
}

func TestPaletted(t *testing.T) {
	b := New(2, 1)
	b.SetBit(1, 0, Foreground)
	p := b.Paletted()
	if p.ColorIndexAt(0, 0) != 0 || p.ColorIndexAt(1, 0) != 1 {
		t.Errorf("Unexpected palette indices: %v", p.Pix)
	}
}
