package renderer

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ivlev/oledframes/internal/config"
	"github.com/ivlev/oledframes/internal/easing"
)

// ErrDegenerateInterval is returned when two bracketing keyframes share the same time
var ErrDegenerateInterval = errors.New("degenerate keyframe interval")

// Values holds property values for one object at one moment
type Values map[string]float64

// Get returns the named value or def when absent
func (v Values) Get(name string, def float64) float64 {
	if val, ok := v[name]; ok {
		return val
	}
	return def
}

// SortKeyframes returns a copy ordered by time; equal times keep declaration order
func SortKeyframes(keyframes []config.Keyframe) []config.Keyframe {
	sorted := make([]config.Keyframe, len(keyframes))
	copy(sorted, keyframes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].T < sorted[j].T
	})
	return sorted
}

// Evaluate interpolates the requested properties at normalized time timeNorm.
// Before the first keyframe and after the last the boundary values are held;
// in between, the bracketing pair is blended through curve.
// keyframes may be in any order; already sorted input is used without a copy.
func Evaluate(keyframes []config.Keyframe, timeNorm float64, curve easing.Func, props []string) (Values, error) {
	if len(keyframes) == 0 {
		return Values{}, nil
	}
	if curve == nil {
		curve = easing.Linear.Func()
	}

	kfs := keyframes
	if !sort.SliceIsSorted(kfs, func(i, j int) bool { return kfs[i].T < kfs[j].T }) {
		kfs = SortKeyframes(keyframes)
	}
	first, last := kfs[0], kfs[len(kfs)-1]

	if timeNorm <= first.T {
		return snapshot(first, props), nil
	}
	if timeNorm >= last.T {
		return snapshot(last, props), nil
	}

	for i := 0; i < len(kfs)-1; i++ {
		prev, next := kfs[i], kfs[i+1]
		if prev.T <= timeNorm && timeNorm <= next.T {
			u, err := localProgress(prev.T, next.T, timeNorm)
			if err != nil {
				return nil, err
			}
			eased := curve(u)

			out := make(Values, len(props))
			for _, p := range props {
				out[p] = lerp(prev.Value(p), next.Value(p), eased)
			}
			return out, nil
		}
	}

	return snapshot(last, props), nil
}

// localProgress maps t into [0,1] within the interval [t0, t1]
func localProgress(t0, t1, t float64) (float64, error) {
	span := t1 - t0
	if span == 0 {
		return 0, fmt.Errorf("%w at t=%g", ErrDegenerateInterval, t0)
	}
	return (t - t0) / span, nil
}

func snapshot(kf config.Keyframe, props []string) Values {
	out := make(Values, len(props))
	for _, p := range props {
		out[p] = kf.Value(p)
	}
	return out
}

// lerp performs linear interpolation between a and b
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
