package kaboom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// octaveRotation decorrelates the axes of successive noise layers.
var octaveRotation = mgl64.Mat3FromRows(
	v3(0.00, 0.80, 0.60),
	v3(-0.80, 0.36, -0.48),
	v3(-0.60, -0.48, 0.64),
)

// lattice strides: a unit step in x, y and z moves the hash input by 1, 57 and 113.
var latticeStride = v3(1, 57, 113)

func hash(n float64) float64 {
	x := math.Sin(n) * hashScale
	return x - math.Floor(x)
}

// valueNoise blends hash values at the 8 lattice corners around p.
func valueNoise(p Vec3) float64 {
	i := v3(math.Floor(p[0]), math.Floor(p[1]), math.Floor(p[2]))
	f := p.Sub(i)
	f = f.Mul(f.Dot(v3(3, 3, 3).Sub(f.Mul(2))))
	n := i.Dot(latticeStride)

	return lerp(
		lerp(
			lerp(hash(n+0), hash(n+1), f[0]),
			lerp(hash(n+57), hash(n+58), f[0]), f[1]),
		lerp(
			lerp(hash(n+113), hash(n+114), f[0]),
			lerp(hash(n+170), hash(n+171), f[0]), f[1]), f[2])
}

func rotate(v Vec3) Vec3 {
	return octaveRotation.Mul3x1(v)
}

// fbm sums four octaves of value noise; the result stays in [0,1].
func fbm(x Vec3) float64 {
	p := rotate(x)
	f := 0.0
	f += 0.5000 * valueNoise(p)
	p = p.Mul(2.32)
	f += 0.2500 * valueNoise(p)
	p = p.Mul(3.03)
	f += 0.1250 * valueNoise(p)
	p = p.Mul(2.61)
	f += 0.0625 * valueNoise(p)
	return f / fbmNorm
}
