package kaboom

import "math"

// Fire palette control points. Yellow is "hot": its components exceed 1.
var (
	Gray     = v3(0.4, 0.4, 0.4)
	DarkGray = v3(0.2, 0.2, 0.2)
	Red      = v3(1.0, 0.0, 0.0)
	Orange   = v3(1.0, 0.6, 0.0)
	Yellow   = v3(1.7, 1.3, 1.0)
	White    = v3(1, 1, 1)
)

// PaletteFire maps d in [0,1] along gray, dark gray, red, orange and yellow.
// Out of range input is clamped, the output is not.
func PaletteFire(d float64) Vec3 {
	x := clamp01(d)
	switch {
	case x < .25:
		return lerpVec(Gray, DarkGray, x*4)
	case x < .5:
		return lerpVec(DarkGray, Red, x*4-1)
	case x < .75:
		return lerpVec(Red, Orange, x*4-2)
	}
	return lerpVec(Orange, Yellow, x*4-3)
}

// Shade returns the color seen along r.
func (s *Scene) Shade(r Ray) Vec3 {
	hit, ok := s.March(r)
	return s.colorAt(hit, ok)
}

// colorAt lights the hit point with the palette, or returns the flat background on a miss.
func (s *Scene) colorAt(hit Vec3, ok bool) Vec3 {
	if !ok {
		return s.Background
	}
	if s.Flat {
		return White
	}
	// a zero amplitude gives +Inf here, which the palette clamps to yellow
	level := (s.Radius - hit.Len()) / s.Amplitude
	lightDir := unit(s.Light.Sub(hit))
	intensity := math.Max(AmbientFloor, lightDir.Dot(s.Normal(hit)))
	return PaletteFire((level - LevelOffset) * LevelGain).Mul(intensity)
}
