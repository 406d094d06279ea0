package kaboom

// Normal estimates the surface normal at p with forward differences of the SDF.
// The result is very sensitive to NormalEps.
func (s *Scene) Normal(p Vec3) Vec3 {
	eps := s.NormalEps
	d := s.SignedDistance(p)
	nx := s.SignedDistance(p.Add(v3(eps, 0, 0))) - d
	ny := s.SignedDistance(p.Add(v3(0, eps, 0))) - d
	nz := s.SignedDistance(p.Add(v3(0, 0, eps))) - d
	return unit(v3(nx, ny, nz))
}
