package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Keyframe binds property values to a normalized time in [0,1]
type Keyframe struct {
	T      float64
	Values map[string]float64
}

// Value returns the named property, or 0 when the keyframe does not set it
func (k Keyframe) Value(name string) float64 {
	return k.Values[name]
}

// Properties lists the property names set on the keyframe in sorted order
func (k Keyframe) Properties() []string {
	names := make([]string, 0, len(k.Values))
	for name := range k.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UnmarshalYAML reads the flat form `{t: 0.5, x: 10, r: 3}`
func (k *Keyframe) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]float64
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("%w: keyframe at line %d: %v", ErrInvalidConfig, value.Line, err)
	}
	t, ok := raw["t"]
	if !ok {
		return fmt.Errorf("%w: keyframe at line %d has no t", ErrInvalidConfig, value.Line)
	}
	delete(raw, "t")
	k.T = t
	k.Values = raw
	return nil
}

// MarshalYAML writes the flat form back
func (k Keyframe) MarshalYAML() (interface{}, error) {
	out := make(map[string]float64, len(k.Values)+1)
	for name, v := range k.Values {
		out[name] = v
	}
	out["t"] = k.T
	return out, nil
}

// UnmarshalYAML applies per-animation defaults for absent fields
func (a *Animation) UnmarshalYAML(value *yaml.Node) error {
	type plain Animation
	raw := plain{Name: DefaultName, Duration: DefaultDuration}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*a = Animation(raw)
	return nil
}

// UnmarshalYAML applies per-object defaults for absent fields
func (o *Object) UnmarshalYAML(value *yaml.Node) error {
	type plain Object
	raw := plain{Type: DefaultType, Easing: DefaultEasing, Fill: DefaultFill}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*o = Object(raw)
	return nil
}
