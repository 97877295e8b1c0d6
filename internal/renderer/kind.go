package renderer

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPrimitive is returned for an unknown object type
var ErrUnsupportedPrimitive = errors.New("unsupported primitive")

// Kind is a drawable primitive type
type Kind int

const (
	Circle Kind = iota
	Rect
	Ellipse
	Line
	Text
	Pixel
)

func (k Kind) String() string {
	switch k {
	case Circle:
		return "circle"
	case Rect:
		return "rect"
	case Ellipse:
		return "ellipse"
	case Line:
		return "line"
	case Text:
		return "text"
	case Pixel:
		return "pixel"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind maps a configuration type name to a Kind
func ParseKind(name string) (Kind, error) {
	switch name {
	case "circle":
		return Circle, nil
	case "rect":
		return Rect, nil
	case "ellipse":
		return Ellipse, nil
	case "line":
		return Line, nil
	case "text":
		return Text, nil
	case "pixel":
		return Pixel, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedPrimitive, name)
	}
}

// Properties lists the animatable properties of the kind
func (k Kind) Properties() []string {
	switch k {
	case Circle:
		return []string{"x", "y", "r"}
	case Rect:
		return []string{"x", "y", "w", "h", "r"}
	case Ellipse:
		return []string{"x", "y", "rx", "ry"}
	case Line:
		return []string{"x1", "y1", "x2", "y2", "stroke"}
	case Text:
		return []string{"x", "y", "size"}
	case Pixel:
		return []string{"x", "y"}
	default:
		return nil
	}
}
