package kaboom

import "math"

// Ray is a half-line; Dir must be unit length.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// March sphere-traces r against the scene and returns the first sample inside the
// surface. Dir is not re-normalized.
func (s *Scene) March(r Ray) (Vec3, bool) {
	pos, cat, _ := s.march(r)
	return pos, cat == Hit
}

func (s *Scene) march(r Ray) (Vec3, Category, int) {
	// analytic reject against the undisplaced bounding sphere
	od := r.Origin.Dot(r.Dir)
	if r.Origin.Dot(r.Origin)-od*od > s.Radius*s.Radius {
		return Vec3{}, Rejected, 0
	}
	pos := r.Origin
	for step := 0; step < s.MaxSteps; step++ {
		d := s.SignedDistance(pos)
		if d < 0 {
			return pos, Hit, step
		}
		pos = pos.Add(r.Dir.Mul(math.Max(d*s.StepScale, s.MinStep)))
	}
	return Vec3{}, Exhausted, s.MaxSteps
}
