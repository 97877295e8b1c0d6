package engine

import (
	"errors"
	"fmt"
	"log"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/oledframes/internal/canvas"
	"github.com/ivlev/oledframes/internal/config"
	"github.com/ivlev/oledframes/internal/easing"
	"github.com/ivlev/oledframes/internal/renderer"
)

// ErrDuplicateAnimation is returned when two animations share a name
var ErrDuplicateAnimation = errors.New("duplicate animation name")

// AnimationFrames is the rendered frame sequence of one animation
type AnimationFrames struct {
	Name     string
	Duration float64
	Frames   []*canvas.Bitmap
}

// Result holds every animation's frames in declaration order
type Result struct {
	Width      int
	Height     int
	FPS        int
	Animations []AnimationFrames
}

// Lookup returns the frames of the named animation
func (r *Result) Lookup(name string) ([]*canvas.Bitmap, bool) {
	for _, a := range r.Animations {
		if a.Name == name {
			return a.Frames, true
		}
	}
	return nil, false
}

// TotalFrames counts frames across all animations
func (r *Result) TotalFrames() int {
	n := 0
	for _, a := range r.Animations {
		n += len(a.Frames)
	}
	return n
}

// Generator turns an animation document into frames.
// Animations are rendered concurrently; frames of one animation and objects
// within a frame are processed in order.
type Generator struct {
	Fonts   *renderer.FontSource
	Workers int
	Verbose bool
}

func NewGenerator(fonts *renderer.FontSource, workers int) *Generator {
	if fonts == nil {
		fonts = renderer.NewFontSource("")
	}
	return &Generator{
		Fonts:   fonts,
		Workers: workers,
	}
}

// Generate renders cfg with a default generator
func Generate(cfg *config.Config) (*Result, error) {
	return NewGenerator(nil, 0).Generate(cfg)
}

// object is a config object resolved into renderer terms
type object struct {
	kind      renderer.Kind
	curve     easing.Func
	keyframes []config.Keyframe
	props     []string
	static    renderer.Static
	fill      uint8
}

func compile(anim config.Animation) ([]object, error) {
	objects := make([]object, 0, len(anim.Objects))
	for i, o := range anim.Objects {
		kind, err := renderer.ParseKind(o.Type)
		if err != nil {
			return nil, fmt.Errorf("animation %q, object %d: %w", anim.Name, i, err)
		}
		fill := canvas.Foreground
		if o.Fill == 0 {
			fill = canvas.Background
		}
		objects = append(objects, object{
			kind:      kind,
			curve:     easing.Lookup(o.Easing),
			keyframes: renderer.SortKeyframes(o.Keyframes),
			props:     kind.Properties(),
			static:    renderer.Static{Text: o.Text},
			fill:      fill,
		})
	}
	return objects, nil
}

func (g *Generator) Generate(cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(cfg.Animations))
	compiled := make([][]object, len(cfg.Animations))
	for i, anim := range cfg.Animations {
		if seen[anim.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAnimation, anim.Name)
		}
		seen[anim.Name] = true

		objects, err := compile(anim)
		if err != nil {
			return nil, err
		}
		compiled[i] = objects
	}

	workers := g.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	result := &Result{
		Width:      cfg.Canvas.Width,
		Height:     cfg.Canvas.Height,
		FPS:        cfg.FPS,
		Animations: make([]AnimationFrames, len(cfg.Animations)),
	}

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i, anim := range cfg.Animations {
		i, anim := i, anim
		eg.Go(func() error {
			r := renderer.New(g.Fonts)
			frames, err := g.renderAnimation(r, cfg, anim, compiled[i])
			if err != nil {
				return err
			}
			result.Animations[i] = AnimationFrames{
				Name:     anim.Name,
				Duration: anim.Duration,
				Frames:   frames,
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

func (g *Generator) renderAnimation(r *renderer.Renderer, cfg *config.Config, anim config.Animation, objects []object) ([]*canvas.Bitmap, error) {
	total := anim.TotalFrames(cfg.FPS)
	if g.Verbose {
		log.Printf("[*] %s: %d кадров (%.2fs @ %d FPS)", anim.Name, total, anim.Duration, cfg.FPS)
	}

	frames := make([]*canvas.Bitmap, 0, total)
	for i := 0; i < total; i++ {
		frame, err := renderFrame(r, cfg, objects, NormalizedTime(i, total))
		if err != nil {
			return nil, fmt.Errorf("animation %q, frame %d: %w", anim.Name, i, err)
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

func renderFrame(r *renderer.Renderer, cfg *config.Config, objects []object, t float64) (*canvas.Bitmap, error) {
	c := canvas.New(cfg.Canvas.Width, cfg.Canvas.Height)
	for j, obj := range objects {
		vals, err := renderer.Evaluate(obj.keyframes, t, obj.curve, obj.props)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", j, err)
		}
		if err := r.Draw(c, obj.kind, vals, obj.static, obj.fill); err != nil {
			return nil, fmt.Errorf("object %d: %w", j, err)
		}
	}
	if cfg.InvertGlobal {
		c.Invert()
	}
	return c, nil
}

// NormalizedTime maps frame index i of total to [0,1]; a single frame sits at 0
func NormalizedTime(i, total int) float64 {
	return float64(i) / float64(max(1, total-1))
}
