package kaboom

import (
	"fmt"
	"math"
)

// Displacement selects the scalar field that perturbs the sphere radius.
type Displacement uint8

const (
	DisplaceFBM  Displacement = iota // turbulence, the fire ball
	DisplaceSine                     // sin(16x)*sin(16y)*sin(16z)
	DisplaceNone                     // plain sphere
)

var displacementNames = map[Displacement]string{
	DisplaceFBM:  "fbm",
	DisplaceSine: "sine",
	DisplaceNone: "none",
}

func (d Displacement) String() string {
	if s, ok := displacementNames[d]; ok {
		return s
	}
	return fmt.Sprintf("Displacement(%d)", uint8(d))
}

// ParseDisplacement maps a config name to a Displacement; empty means fbm.
func ParseDisplacement(name string) (Displacement, error) {
	if name == "" {
		return DisplaceFBM, nil
	}
	for d, s := range displacementNames {
		if s == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown displacement %q (want fbm, sine or none)", name)
}

func (s *Scene) displacement(p Vec3) float64 {
	switch s.Displacement {
	case DisplaceSine:
		return math.Sin(SineFrequency*p[0]) * math.Sin(SineFrequency*p[1]) * math.Sin(SineFrequency*p[2]) * s.Amplitude
	case DisplaceNone:
		return 0
	default:
		return -fbm(p.Mul(s.NoiseScale)) * s.Amplitude
	}
}

// SignedDistance is negative inside the surface, zero on it and positive outside.
func (s *Scene) SignedDistance(p Vec3) float64 {
	return p.Len() - (s.Radius + s.displacement(p))
}
