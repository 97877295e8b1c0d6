package export

import (
	"errors"
	"fmt"
	"image/gif"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ivlev/oledframes/internal/canvas"
	"github.com/ivlev/oledframes/internal/engine"
)

// ErrNameCollision is returned when two animation names map to the same
// file name or C identifier
var ErrNameCollision = errors.New("animation names collide after sanitizing")

// CheckNames rejects results whose animations would share output files or
// header symbols.
func CheckNames(res *engine.Result) error {
	files := make(map[string]string, len(res.Animations))
	idents := make(map[string]string, len(res.Animations))
	for _, anim := range res.Animations {
		safe := SafeName(anim.Name)
		if prev, ok := files[safe]; ok {
			return fmt.Errorf("%w: %q and %q both become %q", ErrNameCollision, prev, anim.Name, safe)
		}
		files[safe] = anim.Name

		id := Identifier(anim.Name)
		if prev, ok := idents[id]; ok {
			return fmt.Errorf("%w: %q and %q both become %q", ErrNameCollision, prev, anim.Name, id)
		}
		idents[id] = anim.Name
	}
	return nil
}

// FramePath is where frame i of an animation is stored under dir
func FramePath(dir, name string, i int) string {
	return filepath.Join(dir, SafeName(name), fmt.Sprintf("frame_%04d.png", i))
}

// PreviewPath is where the GIF preview of an animation is stored under dir
func PreviewPath(dir, name string) string {
	return filepath.Join(dir, SafeName(name)+"_preview.gif")
}

// WriteFrames stores every frame as a 1-bit PNG and returns the file count
func WriteFrames(dir string, res *engine.Result) (int, error) {
	if err := CheckNames(res); err != nil {
		return 0, err
	}
	total := 0
	for _, anim := range res.Animations {
		animDir := filepath.Join(dir, SafeName(anim.Name))
		if err := os.MkdirAll(animDir, 0755); err != nil {
			return total, err
		}
		for i, frame := range anim.Frames {
			if err := writePNG(FramePath(dir, anim.Name, i), frame); err != nil {
				return total, fmt.Errorf("%s frame %d: %w", anim.Name, i, err)
			}
			total++
		}
	}
	return total, nil
}

func writePNG(path string, frame *canvas.Bitmap) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, frame.Paletted()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FrameDelay is the GIF frame delay in hundredths of a second
func FrameDelay(fps int) int {
	if fps <= 0 {
		return 1
	}
	ms := max(1, 1000/fps)
	return max(1, int(math.Round(float64(ms)/10)))
}

// WritePreviews stores a looping GIF per animation with at least two frames
// and returns the paths written.
func WritePreviews(dir string, res *engine.Result) ([]string, error) {
	if err := CheckNames(res); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	delay := FrameDelay(res.FPS)
	var written []string
	for _, anim := range res.Animations {
		if len(anim.Frames) < 2 {
			continue
		}

		g := &gif.GIF{LoopCount: 0}
		for _, frame := range anim.Frames {
			g.Image = append(g.Image, frame.Paletted())
			g.Delay = append(g.Delay, delay)
		}

		path := PreviewPath(dir, anim.Name)
		f, err := os.Create(path)
		if err != nil {
			return written, err
		}
		if err := gif.EncodeAll(f, g); err != nil {
			f.Close()
			return written, fmt.Errorf("%s preview: %w", anim.Name, err)
		}
		if err := f.Close(); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// SafeName turns an animation name into a file and identifier friendly form
func SafeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "untitled"
	}
	return b.String()
}
