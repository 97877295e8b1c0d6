package easing

import (
	"math"
	"testing"
)

func TestBoundaries(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			if got := k.Apply(0); math.Abs(got) > 1e-9 {
				t.Errorf("%s(0) = %f, expected 0", k, got)
			}
			if got := k.Apply(1); math.Abs(got-1) > 1e-9 {
				t.Errorf("%s(1) = %f, expected 1", k, got)
			}
		})
	}
}

func TestElasticExactBoundaries(t *testing.T) {
	if got := EaseElastic.Apply(0); got != 0 {
		t.Errorf("elastic(0) = %v, expected exactly 0", got)
	}
	if got := EaseElastic.Apply(1); got != 1 {
		t.Errorf("elastic(1) = %v, expected exactly 1", got)
	}
}

func TestKnownValues(t *testing.T) {
	tests := []struct {
		kind     Kind
		in       float64
		expected float64
	}{
		{Linear, 0.3, 0.3},
		{EaseIn, 0.5, 0.25},
		{EaseOut, 0.5, 0.75},
		{EaseInOut, 0.25, 0.125},
		{EaseInOut, 0.75, 0.875},
		{EaseInCubic, 0.5, 0.125},
		{EaseOutCubic, 0.5, 0.875},
		{EaseInOutCubic, 0.25, 0.0625},
		{EaseInOutCubic, 0.75, 0.96875},
		{EaseBounce, 0.2, 7.5625 * 0.04},
		{EaseBounce, 0.5, 7.5625*math.Pow(0.5-1.5/2.75, 2) + 0.75},
		{EaseBounce, 0.8, 7.5625*math.Pow(0.8-2.25/2.75, 2) + 0.9375},
		{EaseBounce, 0.95, 7.5625*math.Pow(0.95-2.625/2.75, 2) + 0.984375},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got := tt.kind.Apply(tt.in)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("%s(%.2f): expected %f, got %f", tt.kind, tt.in, tt.expected, got)
			}
		})
	}
}

func TestElasticOvershoots(t *testing.T) {
	overshoot := false
	for i := 1; i < 100; i++ {
		v := EaseElastic.Apply(float64(i) / 100)
		if v > 1 || v < 0 {
			overshoot = true
			break
		}
	}
	if !overshoot {
		t.Error("elastic curve should leave [0,1] somewhere inside the interval")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		expected Kind
	}{
		{"linear", Linear},
		{"ease_in", EaseIn},
		{"ease_out", EaseOut},
		{"ease_in_out", EaseInOut},
		{"ease_in_cubic", EaseInCubic},
		{"ease_out_cubic", EaseOutCubic},
		{"ease_in_out_cubic", EaseInOutCubic},
		{"ease_bounce", EaseBounce},
		{"ease_elastic", EaseElastic},
		{"", Linear},
		{"EASE_IN", Linear},
		{"wobble", Linear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.name); got != tt.expected {
				t.Errorf("Parse(%q) = %s, expected %s", tt.name, got, tt.expected)
			}
		})
	}
}

func TestLookupFallsBackToLinear(t *testing.T) {
	fn := Lookup("does_not_exist")
	for _, v := range []float64{0, 0.1, 0.5, 0.9, 1} {
		if fn(v) != v {
			t.Errorf("fallback curve changed %f to %f", v, fn(v))
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		if Parse(k.String()) != k {
			t.Errorf("Parse(%q) did not return %d", k.String(), k)
		}
	}
}
