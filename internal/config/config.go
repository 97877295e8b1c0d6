package config

import (
	"errors"
	"fmt"
	"math"
)

// Defaults of the animation document, used when a field is absent
const (
	DefaultWidth       = 128
	DefaultHeight      = 64
	DefaultFPS         = 12
	DefaultMemoryLimit = 32 // KB
	DefaultName        = "untitled"
	DefaultDuration    = 1.0
	DefaultType        = "circle"
	DefaultEasing      = "linear"
	DefaultFill        = 1
)

// ErrInvalidConfig marks a structurally invalid animation document
var ErrInvalidConfig = errors.New("invalid animation config")

// Config is the parsed animation document
type Config struct {
	Canvas       Canvas      `yaml:"canvas"`
	FPS          int         `yaml:"fps"`
	InvertGlobal bool        `yaml:"invert_global"`
	MemoryLimit  int         `yaml:"memory_limit"` // KB
	Animations   []Animation `yaml:"animations"`
}

type Canvas struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Animation is a named, ordered list of objects played for Duration seconds
type Animation struct {
	Name     string   `yaml:"name"`
	Duration float64  `yaml:"duration"` // seconds
	Objects  []Object `yaml:"objects"`
}

// Object is one drawable unit of an animation
type Object struct {
	Type      string     `yaml:"type"`
	Easing    string     `yaml:"easing"`
	Fill      int        `yaml:"fill"` // 1 foreground, 0 background
	Keyframes []Keyframe `yaml:"keyframes"`
	Text      string     `yaml:"text,omitempty"`
}

// Options are the run settings supplied on the command line
type Options struct {
	ConfigPath   string
	OutputDir    string
	Preview      bool
	Header       bool
	Workers      int
	FontPath     string
	Verbose      bool
	ShowStats    bool
	BuildVersion string
}

// Default returns a document carrying only the top-level defaults
func Default() *Config {
	return &Config{
		Canvas:      Canvas{Width: DefaultWidth, Height: DefaultHeight},
		FPS:         DefaultFPS,
		MemoryLimit: DefaultMemoryLimit,
	}
}

// ApplyDefaults fills empty identifiers of a document built in memory.
// Numeric zero values are kept as given.
func (c *Config) ApplyDefaults() {
	for i := range c.Animations {
		a := &c.Animations[i]
		if a.Name == "" {
			a.Name = DefaultName
		}
		for j := range a.Objects {
			o := &a.Objects[j]
			if o.Type == "" {
				o.Type = DefaultType
			}
			if o.Easing == "" {
				o.Easing = DefaultEasing
			}
		}
	}
}

// Validate reports structural defects the engine relies on being absent
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas %dx%d", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalidConfig, c.FPS)
	}
	if c.MemoryLimit < 0 {
		return fmt.Errorf("%w: memory_limit %d", ErrInvalidConfig, c.MemoryLimit)
	}
	for i, a := range c.Animations {
		if a.Name == "" {
			return fmt.Errorf("%w: animation %d has no name", ErrInvalidConfig, i)
		}
		if a.Duration < 0 {
			return fmt.Errorf("%w: animation %q has negative duration", ErrInvalidConfig, a.Name)
		}
	}
	return nil
}

// TotalFrames is the number of frames an animation yields at fps
func (a Animation) TotalFrames(fps int) int {
	n := int(math.Round(a.Duration * float64(fps)))
	if n < 1 {
		return 1
	}
	return n
}
