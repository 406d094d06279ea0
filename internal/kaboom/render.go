package kaboom

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Render fills a framebuffer for cam. Every pixel depends only on its own (i, j) and
// the scene, so rows are split into disjoint bands, one per worker, and written
// without locks.
func Render(scene *Scene, cam Camera) *Framebuffer {
	fb := NewFramebuffer(cam.Width, cam.Height)
	if fb.Width == 0 || fb.Height == 0 {
		return fb
	}

	workers := Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > fb.Height {
		workers = fb.Height
	}
	workers = imax(workers, 1)
	DebugLog("Rendering %dx%d with %d workers, displacement=%s", fb.Width, fb.Height, workers, scene.Displacement)

	var counter int64
	nextPrint := int64(imax(1, fb.Height/100)) // ~1%

	// Distribute rows across workers (evenly, with remainder spread).
	base, rem := fb.Height/workers, fb.Height%workers
	var wg sync.WaitGroup
	wg.Add(workers)

	lo := 0
	for w := 0; w < workers; w++ {
		n := base
		if w < rem {
			n++
		}
		j0, j1 := lo, lo+n
		lo = j1
		go func() {
			defer wg.Done()
			for j := j0; j < j1; j++ {
				renderRow(scene, cam, fb, j)
				done := atomic.AddInt64(&counter, 1)
				if Debug && done%nextPrint == 0 {
					fmt.Printf("[PROGRESS] %.2f%%\n", float64(done)*100/float64(fb.Height))
				}
			}
		}()
	}

	wg.Wait()
	return fb
}

func renderRow(scene *Scene, cam Camera, fb *Framebuffer, j int) {
	for i := 0; i < fb.Width; i++ {
		hit, cat, steps := scene.march(cam.PrimaryRay(i, j))
		fb.Set(i, j, scene.colorAt(hit, cat == Hit))
		if Debug {
			logRay(cat, i, j, hit, steps)
		}
	}
}
