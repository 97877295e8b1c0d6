package easing

import "math"

// Kind identifies one of the supported easing curves
type Kind int

const (
	Linear Kind = iota
	EaseIn
	EaseOut
	EaseInOut
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseBounce
	EaseElastic
)

var names = [...]string{
	Linear:         "linear",
	EaseIn:         "ease_in",
	EaseOut:        "ease_out",
	EaseInOut:      "ease_in_out",
	EaseInCubic:    "ease_in_cubic",
	EaseOutCubic:   "ease_out_cubic",
	EaseInOutCubic: "ease_in_out_cubic",
	EaseBounce:     "ease_bounce",
	EaseElastic:    "ease_elastic",
}

// Kinds returns every supported curve in declaration order
func Kinds() []Kind {
	return []Kind{Linear, EaseIn, EaseOut, EaseInOut, EaseInCubic, EaseOutCubic, EaseInOutCubic, EaseBounce, EaseElastic}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(names) {
		return names[Linear]
	}
	return names[k]
}

// Parse maps a configuration name to a Kind. Unknown names are linear.
func Parse(name string) Kind {
	switch name {
	case "ease_in":
		return EaseIn
	case "ease_out":
		return EaseOut
	case "ease_in_out":
		return EaseInOut
	case "ease_in_cubic":
		return EaseInCubic
	case "ease_out_cubic":
		return EaseOutCubic
	case "ease_in_out_cubic":
		return EaseInOutCubic
	case "ease_bounce":
		return EaseBounce
	case "ease_elastic":
		return EaseElastic
	default:
		return Linear
	}
}

// Apply maps normalized progress t through the curve.
// The result may leave [0,1] for bounce and elastic.
func (k Kind) Apply(t float64) float64 {
	switch k {
	case EaseIn:
		return t * t
	case EaseOut:
		return t * (2 - t)
	case EaseInOut:
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	case EaseInCubic:
		return t * t * t
	case EaseOutCubic:
		u := t - 1
		return u*u*u + 1
	case EaseInOutCubic:
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := t - 1
		return 0.5 * (4*u*u*u + 2)
	case EaseBounce:
		return bounce(t)
	case EaseElastic:
		return elastic(t)
	default:
		return t
	}
}

// Func is the plain function form of a curve
type Func func(t float64) float64

// Func returns the curve as a function value
func (k Kind) Func() Func {
	return k.Apply
}

// Lookup resolves a curve by name, falling back to linear
func Lookup(name string) Func {
	return Parse(name).Func()
}

const (
	bounceCoeff = 7.5625
	bounceDiv   = 2.75
)

func bounce(t float64) float64 {
	switch {
	case t < 1/bounceDiv:
		return bounceCoeff * t * t
	case t < 2/bounceDiv:
		t -= 1.5 / bounceDiv
		return bounceCoeff*t*t + 0.75
	case t < 2.5/bounceDiv:
		t -= 2.25 / bounceDiv
		return bounceCoeff*t*t + 0.9375
	default:
		t -= 2.625 / bounceDiv
		return bounceCoeff*t*t + 0.984375
	}
}

func elastic(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	return -math.Pow(2, 10*(t-1)) * math.Sin((t-1.075)*(2*math.Pi)/0.3)
}
