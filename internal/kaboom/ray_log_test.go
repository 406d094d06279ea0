package kaboom

import (
	"math"
	"testing"
)

func TestRayLogCache(t *testing.T) {
	resetRayLog()
	logRay(Hit, 0, 0, v3(1, 0, 0), 10)
	logRay(Hit, 1, 0, v3(1, 0, 0), 12)
	logRay(Rejected, 2, 0, Vec3{}, 0)
	if len(cache.rays[Hit]) != 2 || len(cache.rays[Rejected]) != 1 {
		t.Fatalf("unexpected cache sizes: %+v", cache.rays)
	}
	raysStats()
}

func TestRenderLogsEveryRay(t *testing.T) {
	oldDebug := Debug
	Debug = true
	defer func() { Debug = oldDebug }()
	withWorkers(t, 2)
	resetRayLog()

	fb := Render(DefaultScene(), NewCamera(16, 12, math.Pi/3))
	total := 0
	for _, logs := range cache.rays {
		total += len(logs)
	}
	if total != len(fb.Pix) {
		t.Fatalf("logged %d rays for %d pixels", total, len(fb.Pix))
	}
	for _, l := range cache.rays[Hit] {
		if fb.At(l.I, l.J) == DefaultScene().Background {
			t.Fatalf("hit pixel (%d,%d) shaded as background", l.I, l.J)
		}
	}
	resetRayLog()
}

func TestCategoryString(t *testing.T) {
	if Hit.String() != "hit" || Rejected.String() != "rejected" || Exhausted.String() != "exhausted" {
		t.Fatal("category names wrong")
	}
}
