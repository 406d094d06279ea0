package kaboom

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is used for points, directions and linear RGB colors alike.
type Vec3 = mgl64.Vec3

func v3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// unit returns a unit-length version of v.
// If v is zero, it is returned unchanged.
func unit(v Vec3) Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// lerp blends a towards b, t is clamped to [0,1].
func lerp(a, b, t float64) float64 {
	return a + (b-a)*mgl64.Clamp(t, 0, 1)
}

func lerpVec(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Mul(mgl64.Clamp(t, 0, 1)))
}
