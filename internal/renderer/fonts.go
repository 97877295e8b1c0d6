package renderer

import (
	"log"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// DefaultFontPath is the monospace face tried before the built-in bitmap font
const DefaultFontPath = "/usr/share/fonts/truetype/dejavu/DejaVuSansMono.ttf"

// FontSource loads a TrueType file once and hands out sized faces.
// A missing or unreadable file is not an error: every face then falls back
// to basicfont.Face7x13.
type FontSource struct {
	Path string

	once sync.Once
	font *opentype.Font
}

func NewFontSource(path string) *FontSource {
	if path == "" {
		path = DefaultFontPath
	}
	return &FontSource{Path: path}
}

func (s *FontSource) load() {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		log.Printf("[!] Шрифт %s недоступен, используется встроенный: %v", s.Path, err)
		return
	}
	f, err := opentype.Parse(data)
	if err != nil {
		log.Printf("[!] Не удалось разобрать шрифт %s: %v", s.Path, err)
		return
	}
	s.font = f
}

// Loaded reports whether the TrueType file is in use
func (s *FontSource) Loaded() bool {
	s.once.Do(s.load)
	return s.font != nil
}

// NewFace returns a face of the given pixel size, or the fallback face
func (s *FontSource) NewFace(size int) font.Face {
	if size < 1 {
		size = 1
	}
	if !s.Loaded() {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// faceCache keeps faces per size. Faces are not safe for concurrent use,
// so each Renderer owns its cache.
type faceCache struct {
	src   *FontSource
	faces map[int]font.Face
}

func (c *faceCache) get(size int) font.Face {
	if c.faces == nil {
		c.faces = make(map[int]font.Face)
	}
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := c.src.NewFace(size)
	c.faces[size] = f
	return f
}
