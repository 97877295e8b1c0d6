package config

// Example returns a starter document: a pair of blinking eyes, a glance to
// the side and a status label, sized for a 128x64 SSD1306 panel.
func Example() *Config {
	cfg := Default()
	cfg.Animations = []Animation{
		{
			Name:     "blink",
			Duration: 0.5,
			Objects: []Object{
				eye("ease_in_out", 40, 32, 12, 0),
				eye("ease_in_out", 88, 32, 12, 0),
			},
		},
		{
			Name:     "look_left",
			Duration: 1.0,
			Objects: []Object{
				{
					Type:   "circle",
					Easing: "ease_out_cubic",
					Fill:   1,
					Keyframes: []Keyframe{
						{T: 0, Values: map[string]float64{"x": 40, "y": 32, "r": 12}},
						{T: 1, Values: map[string]float64{"x": 28, "y": 32, "r": 12}},
					},
				},
				{
					Type:   "circle",
					Easing: "ease_out_cubic",
					Fill:   1,
					Keyframes: []Keyframe{
						{T: 0, Values: map[string]float64{"x": 88, "y": 32, "r": 12}},
						{T: 1, Values: map[string]float64{"x": 76, "y": 32, "r": 12}},
					},
				},
			},
		},
		{
			Name:     "status",
			Duration: 1.0,
			Objects: []Object{
				{
					Type:   "rect",
					Easing: "linear",
					Fill:   1,
					Keyframes: []Keyframe{
						{T: 0, Values: map[string]float64{"x": 0, "y": 52, "w": 0, "h": 11, "r": 3}},
						{T: 1, Values: map[string]float64{"x": 0, "y": 52, "w": 127, "h": 11, "r": 3}},
					},
				},
				{
					Type:   "text",
					Easing: "linear",
					Fill:   1,
					Text:   "READY",
					Keyframes: []Keyframe{
						{T: 0, Values: map[string]float64{"x": 44, "y": 36, "size": 12}},
					},
				},
			},
		},
	}
	return cfg
}

// eye is a round eye that closes at mid-animation and reopens
func eye(curve string, x, y, open, closed float64) Object {
	return Object{
		Type:   "ellipse",
		Easing: curve,
		Fill:   1,
		Keyframes: []Keyframe{
			{T: 0, Values: map[string]float64{"x": x, "y": y, "rx": open, "ry": open}},
			{T: 0.5, Values: map[string]float64{"x": x, "y": y, "rx": open, "ry": closed}},
			{T: 1, Values: map[string]float64{"x": x, "y": y, "rx": open, "ry": open}},
		},
	}
}
