package kaboom

import (
	"math"
	"testing"
)

func plainScene() *Scene {
	s := DefaultScene()
	s.Amplitude = 0
	s.Displacement = DisplaceNone
	return s
}

func testDirs() []Vec3 {
	return []Vec3{
		{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1},
		unit(v3(1, 1, 1)), unit(v3(-1, 2, -3)), unit(v3(0.3, -0.1, 0.9)),
	}
}

func TestMarchFromInsideAlwaysHits(t *testing.T) {
	s := plainScene()
	origins := []Vec3{{0, 0, 0}, {1.4, 0, 0}, {0, -1.2, 0.5}, unit(v3(1, 1, 1)).Mul(1.49)}
	for _, o := range origins {
		for _, d := range testDirs() {
			hit, ok := s.March(Ray{Origin: o, Dir: d})
			if !ok {
				t.Fatalf("origin %v dir %v: expected hit", o, d)
			}
			if s.SignedDistance(hit) >= 0 {
				t.Fatalf("hit point %v is not inside the surface", hit)
			}
		}
	}
}

func TestMarchNeverRejectsInsideBoundingSphere(t *testing.T) {
	s := DefaultScene()
	o := v3(0, 0, s.Radius) // on the bounding sphere
	for _, d := range testDirs() {
		if _, cat, _ := s.march(Ray{Origin: o, Dir: d}); cat == Rejected {
			t.Fatalf("dir %v rejected from %v", d, o)
		}
	}
}

func TestMarchMissRejected(t *testing.T) {
	s := DefaultScene()
	r := Ray{Origin: v3(0, 0, 3), Dir: v3(0, 0, 1)}
	// pointing away but through the axis: not rejected, marched until the budget ends
	if _, ok := s.March(r); ok {
		t.Fatal("ray pointing away should miss")
	}
	r = Ray{Origin: v3(0, 3, 3), Dir: v3(0, 0, -1)}
	if _, cat, steps := s.march(r); cat != Rejected || steps != 0 {
		t.Fatalf("expected early reject, got %s after %d steps", cat, steps)
	}
}

func TestMarchStepBudget(t *testing.T) {
	s := plainScene()
	s.MaxSteps = 1
	r := Ray{Origin: v3(0, 0, 3), Dir: v3(0, 0, -1)}
	if _, cat, steps := s.march(r); cat != Exhausted || steps != 1 {
		t.Fatalf("expected exhausted after 1 step, got %s after %d", cat, steps)
	}
}

func TestMarchStepPolicy(t *testing.T) {
	s := plainScene()
	r := Ray{Origin: v3(0, 0, 3), Dir: v3(0, 0, -1)}
	hit, cat, steps := s.march(r)
	if cat != Hit {
		t.Fatalf("expected hit, got %s", cat)
	}
	// damped steps overshoot by less than the step taken at the crossing
	if hit[2] >= 1.5 || hit[2] < 1.5-MinStep-1e-9 {
		t.Fatalf("hit z=%g not just inside the surface", hit[2])
	}
	if steps <= 1 || steps >= MaxSteps {
		t.Fatalf("unexpected step count %d", steps)
	}
	if math.Abs(hit[0]) > 0 || math.Abs(hit[1]) > 0 {
		t.Fatalf("hit drifted off axis: %v", hit)
	}
}
